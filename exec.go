package appimage

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// ExecContext carries the resolved interpreter paths and the environment
// overlay used for every subprocess the build runs. It stands in for what
// `source venv/bin/activate` would do to a shell, without mutating this
// process's own environment.
type ExecContext struct {
	Python string
	Pip    string
	Env    []string
}

// Run executes a command with the context's environment, blocking until it
// finishes. Output is streamed to the debug log while the command runs, and
// replayed at error level when it fails.
func (ctx *ExecContext) Run(name string, args ...string) error {
	logrus.Debugf("+ %s %s", name, strings.Join(args, " "))
	cmd := exec.Command(name, args...)
	cmd.Env = ctx.Env

	var captured strings.Builder
	debugOut := logrus.StandardLogger().WriterLevel(logrus.DebugLevel)
	defer debugOut.Close()
	cmd.Stdout = io.MultiWriter(&captured, debugOut)
	cmd.Stderr = cmd.Stdout

	if err := cmd.Run(); err != nil {
		if output := strings.TrimSpace(captured.String()); output != "" {
			logrus.Error(output)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// overlayEnv copies an environment list, replacing the keys in overrides and
// leaving out the keys in drop. Override keys not present in the base are
// appended.
func overlayEnv(base []string, overrides StringMap, drop ...string) []string {
	dropped := make(map[string]bool, len(drop))
	for _, key := range drop {
		dropped[key] = true
	}
	used := make(map[string]bool, len(overrides))
	env := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		key := strings.SplitN(entry, "=", 2)[0]
		if dropped[key] {
			continue
		}
		if value, ok := overrides[key]; ok {
			env = append(env, key+"="+value)
			used[key] = true
			continue
		}
		env = append(env, entry)
	}
	for key, value := range overrides {
		if !used[key] {
			env = append(env, key+"="+value)
		}
	}
	return env
}

// lookupInPath resolves an executable name against an explicit PATH value,
// returning the full path of the first match or "".
func lookupInPath(pathList, name string) string {
	for _, dir := range strings.Split(pathList, string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			if unix.Access(candidate, unix.X_OK) == nil {
				return candidate
			}
		}
	}
	return ""
}
