package appimage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOverlayEnv(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/test", "PYTHONHOME=/opt/python"}
	env := overlayEnv(base, StringMap{
		"PATH":        "/venv/bin:/usr/bin",
		"VIRTUAL_ENV": "/venv",
	}, "PYTHONHOME")

	joined := strings.Join(env, "\n")
	for _, expected := range []string{
		"PATH=/venv/bin:/usr/bin",
		"VIRTUAL_ENV=/venv",
		"HOME=/home/test",
	} {
		if !strings.Contains(joined, expected) {
			t.Errorf("missing '%s' in:\n%s", expected, joined)
		}
	}
	if strings.Contains(joined, "PYTHONHOME") {
		t.Error("dropped key still present")
	}
	if strings.Contains(joined, "PATH=/usr/bin\n") {
		t.Error("base PATH not replaced")
	}
}

func TestLookupInPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	tool := filepath.Join(second, "sometool")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	pathList := first + string(os.PathListSeparator) + second
	if got := lookupInPath(pathList, "sometool"); got != tool {
		t.Errorf("got '%s', want '%s'", got, tool)
	}
	if got := lookupInPath(pathList, "missingtool"); got != "" {
		t.Errorf("found nonexistent tool at '%s'", got)
	}
}

func TestLookupInPathIgnoresNonExecutableFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sometool"), []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := lookupInPath(dir, "sometool"); got != "" {
		t.Errorf("non-executable file resolved to '%s'", got)
	}
}

func TestRunReportsFailure(t *testing.T) {
	ctx := &ExecContext{Env: os.Environ()}
	if err := ctx.Run("/bin/sh", "-c", "exit 0"); err != nil {
		t.Errorf("successful command reported: %s", err)
	}
	if err := ctx.Run("/bin/sh", "-c", "echo broken >&2; exit 3"); err == nil {
		t.Error("failing command not reported")
	}
}

func TestRunUsesContextEnvironment(t *testing.T) {
	ctx := &ExecContext{Env: []string{"MARKER=set", "PATH=/usr/bin:/bin"}}
	if err := ctx.Run("/bin/sh", "-c", `[ "$MARKER" = set ]`); err != nil {
		t.Errorf("context environment not passed to subprocess: %s", err)
	}
}
