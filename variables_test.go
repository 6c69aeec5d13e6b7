package appimage

import "testing"

func TestExpandVariables(t *testing.T) {
	expanded := ExpandVariables("{{.name}}-{{.version}}", StringMap{
		"name":    "chromadesk",
		"version": "1.2.3",
	})
	if expanded != "chromadesk-1.2.3" {
		t.Errorf("got '%s'", expanded)
	}
}

func TestExpandVariablesFunctions(t *testing.T) {
	expanded := ExpandVariables(`{{lower .name}} {{replace "." "-" .id}}`, StringMap{
		"name": "ChromaDesk",
		"id":   "io.github.akin2662.chromadesk",
	})
	if expanded != "chromadesk io-github-akin2662-chromadesk" {
		t.Errorf("got '%s'", expanded)
	}
}

func TestExpandVariablesBrokenTemplate(t *testing.T) {
	broken := "{{.unclosed"
	if got := ExpandVariables(broken, StringMap{}); got != broken {
		t.Errorf("broken template not returned verbatim: '%s'", got)
	}
}

func TestMergeVariables(t *testing.T) {
	merged := MergeVariables(
		StringMap{"a": "1", "b": "2"},
		StringMap{"b": "3", "c": "4"},
	)
	if merged["a"] != "1" || merged["b"] != "3" || merged["c"] != "4" {
		t.Errorf("unexpected merge result: %v", merged)
	}
}
