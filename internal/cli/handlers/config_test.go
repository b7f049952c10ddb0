package handlers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/worklog/internal/config"
)

func TestShowConfig_NoFile(t *testing.T) {
	deps, _, stdout, exitCode := setupTestDeps(t, "")
	path := filepath.Join(t.TempDir(), "config.toml")

	ShowConfig(deps, path, "/tmp/worklog.db")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	assertContains(t, stdout.String(),
		"Configuration:",
		"Config file: "+path,
		"Using defaults",
		"Database:    /tmp/worklog.db",
		"timezone:              UTC",
		"duration_match:        substring",
		"clear_screen:          true",
	)
}

func TestShowConfig_WithFile(t *testing.T) {
	deps, _, stdout, _ := setupTestDeps(t, "")
	path := filepath.Join(t.TempDir(), "config.toml")

	InitConfig(deps, path)
	stdout.Reset()

	ShowConfig(deps, path, "")
	if !strings.Contains(stdout.String(), "File exists") {
		t.Errorf("expected 'File exists' in output, got %q", stdout.String())
	}
}

func TestInitConfig(t *testing.T) {
	deps, _, stdout, exitCode := setupTestDeps(t, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	InitConfig(deps, path)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	assertContains(t, stdout.String(), "Created config file:", "Edit this file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
	if string(data) != config.GenerateSampleConfig() {
		t.Error("expected sample config content")
	}
	if _, err := config.Load(path); err != nil {
		t.Errorf("sample config should load cleanly: %v", err)
	}
}

func TestInitConfig_AlreadyExists(t *testing.T) {
	deps, _, _, exitCode := setupTestDeps(t, "")
	stderr := deps.Stderr.(interface{ String() string })
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("timezone = \"UTC\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	InitConfig(deps, path)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("expected 'already exists' in stderr, got %q", stderr.String())
	}

	data, _ := os.ReadFile(path)
	if string(data) != "timezone = \"UTC\"\n" {
		t.Error("existing config must not be overwritten")
	}
}
