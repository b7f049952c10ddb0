package service

import (
	"log/slog"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/logging"
)

// Services holds all service instances used by the application
type Services struct {
	Entry *EntryService
	Query *QueryService
}

// NewServices wires every service to one store.
func NewServices(store Store, cfg config.Config, logger *slog.Logger) *Services {
	return &Services{
		Entry: NewEntryService(store, logging.For(logger, "entry")),
		Query: NewQueryService(store, cfg, logging.For(logger, "query")),
	}
}
