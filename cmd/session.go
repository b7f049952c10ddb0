package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/logging"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/storage"
)

// session is everything a command needs once flags and config are resolved.
type session struct {
	configPath string
	dbPath     string
	cfg        config.Config
	logger     *slog.Logger
	store      *storage.Store
	services   *service.Services
}

// resolveConfig loads the config named by --config, or the default file.
// Failures are reported and end the process.
func resolveConfig(cmd *cobra.Command) (*session, bool) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = deps.ConfigPath()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return nil, false
		}
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", path)
		deps.Exit(1)
		return nil, false
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	return &session{
		configPath: path,
		cfg:        cfg,
		logger:     logging.New(deps.Stderr, verbose),
	}, true
}

// resolveDBPath picks the database file: --db, then db_path from the
// config, then the default location.
func resolveDBPath(flag string, cfg config.Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return deps.StoragePath()
}

// openSession resolves config and opens the store. The caller must call
// close when ok is true.
func openSession(cmd *cobra.Command) (*session, bool) {
	s, ok := resolveConfig(cmd)
	if !ok {
		return nil, false
	}

	flag, _ := cmd.Flags().GetString("db")
	dbPath, err := resolveDBPath(flag, s.cfg)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine storage location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, false
	}
	s.dbPath = dbPath

	store, err := storage.Open(dbPath)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return nil, false
	}
	s.logger.Debug("store opened", logging.ComponentKey, "cmd", "path", dbPath)

	s.store = store
	s.services = service.NewServices(store, s.cfg, s.logger)
	return s, true
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		s.logger.Warn("failed to close store", "path", s.dbPath, "error", err)
	}
}

// cliDeps adapts the process dependencies for the REPL handlers.
func (s *session) cliDeps() *cli.Deps {
	return &cli.Deps{
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		Stdin:    deps.Stdin,
		Exit:     deps.Exit,
		Services: s.services,
		Config:   s.cfg,
		Logger:   s.logger,
		Clear:    cli.ClearScreen(deps.Stdout, s.cfg.ClearScreen),
	}
}
