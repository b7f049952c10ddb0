package cmd

import (
	"io"
	"os"
	"time"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/storage"
	"github.com/xolan/worklog/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Stdin       io.Reader
	Exit        func(code int)
	StoragePath func() (string, error)
	ConfigPath  func() (string, error)
	Browse      func(services *service.Services, loc *time.Location) error
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		StoragePath: storage.GetStoragePath,
		ConfigPath:  config.GetConfigPath,
		Browse:      tui.Run,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
