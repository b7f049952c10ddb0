package main

import (
	"os"
	"testing"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	original := os.Args
	os.Args = append([]string{"worklog"}, args...)
	t.Cleanup(func() { os.Args = original })
}

func TestRun_Version(t *testing.T) {
	withArgs(t, "--version")

	if code := run(); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	withArgs(t, "--no-such-flag")

	if code := run(); code != 1 {
		t.Errorf("Expected exit code 1 for an unknown flag, got %d", code)
	}
}
