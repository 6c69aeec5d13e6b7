package appimage

import (
	"errors"
	"testing"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := ParseOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.VersionUpdate != "" || opts.BuildOnly || opts.AppImage || opts.Debug {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestParseOptionsAllFlags(t *testing.T) {
	opts, err := ParseOptions([]string{"--version-update", "1.2.3", "--build-only", "--appimage", "--debug"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.VersionUpdate != "1.2.3" {
		t.Errorf("got version '%s'", opts.VersionUpdate)
	}
	if !opts.BuildOnly || !opts.AppImage || !opts.Debug {
		t.Errorf("flags not set: %+v", opts)
	}
}

func TestParseOptionsUnknownFlag(t *testing.T) {
	if _, err := ParseOptions([]string{"--frobnicate"}); err == nil {
		t.Error("unknown flag accepted")
	}
}

func TestParseOptionsRejectsPositionalArguments(t *testing.T) {
	if _, err := ParseOptions([]string{"build"}); err == nil {
		t.Error("stray positional argument accepted")
	}
}

func TestParseOptionsHelp(t *testing.T) {
	_, err := ParseOptions([]string{"--help"})
	if !errors.Is(err, ErrHelp) {
		t.Errorf("got %v, want ErrHelp", err)
	}
	_, err = ParseOptions([]string{"-h"})
	if !errors.Is(err, ErrHelp) {
		t.Errorf("got %v, want ErrHelp", err)
	}
}
