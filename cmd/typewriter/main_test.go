package main

import (
	"path/filepath"
	"testing"
)

func TestRunVersionAndHelpExitZero(t *testing.T) {
	for _, args := range [][]string{{"--version"}, {"-v"}, {"--help"}} {
		if code := run(args); code != 0 {
			t.Fatalf("run(%v) = %d, want 0", args, code)
		}
	}
}

func TestRunUnknownFlagExitsOne(t *testing.T) {
	if code := run([]string{"--no-such-flag"}); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveConfigPath("")
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if want := filepath.Join(home, ".typewriter", "config.yaml"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got, err = resolveConfigPath("~/alt.yaml")
	if err != nil {
		t.Fatalf("expand path: %v", err)
	}
	if want := filepath.Join(home, "alt.yaml"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
