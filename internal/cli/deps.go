package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/logging"
	"github.com/xolan/worklog/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services
	Services *service.Services
	Config   config.Config
	Logger   *slog.Logger

	// Clear wipes the screen between REPL screens. Nil means never.
	Clear func()
}

// NewDeps creates a new Deps on the process streams with the given services
func NewDeps(services *service.Services, cfg config.Config, logger *slog.Logger) *Deps {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
		Config:   cfg,
		Logger:   logger,
		Clear:    ClearScreen(os.Stdout, cfg.ClearScreen),
	}
}

// ClearScreen calls d.Clear when set.
func (d *Deps) ClearScreen() {
	if d.Clear != nil {
		d.Clear()
	}
}
