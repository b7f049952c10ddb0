package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/config"
)

// ShowConfig displays the effective configuration and where it came from
func ShowConfig(deps *cli.Deps, path, dbPath string) {
	cfg := deps.Config

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if _, err := os.Stat(path); err == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Database:    %s\n", dbPath)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "db_path:               %s\n", cfg.DBPath)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:              %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "case_sensitive_search: %t\n", cfg.CaseSensitiveSearch)
	_, _ = fmt.Fprintf(deps.Stdout, "duration_match:        %s\n", cfg.DurationMatch)
	_, _ = fmt.Fprintf(deps.Stdout, "clear_screen:          %t\n", cfg.ClearScreen)
}

// InitConfig writes a commented sample config to path. An existing file is
// left untouched.
func InitConfig(deps *cli.Deps, path string) {
	if _, err := os.Stat(path); err == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: config file already exists: %s\n", path)
		deps.Exit(1)
		return
	} else if !errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	if err := os.WriteFile(path, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
