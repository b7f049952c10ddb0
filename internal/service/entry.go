package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/logging"
	"github.com/xolan/worklog/internal/storage"
)

// EntryService creates and deletes entries
type EntryService struct {
	store  Store
	logger *slog.Logger
}

// NewEntryService creates a new EntryService
func NewEntryService(store Store, logger *slog.Logger) *EntryService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &EntryService{
		store:  store,
		logger: logger,
	}
}

// Create validates the four user-supplied fields and persists them as one
// new entry stamped with the current time.
func (s *EntryService) Create(employee, taskName, duration, notes string) (entry.Entry, error) {
	e := entry.New(employee, taskName, duration, notes)
	if err := entry.Validate(e); err != nil {
		return entry.Entry{}, err
	}

	saved, err := s.store.Insert(e)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("failed to save entry: %w", err)
	}

	s.logger.Debug("entry created", logging.OperationKey, "create", "id", saved.ID, "employee", saved.Employee)
	return saved, nil
}

// Delete removes e from the store after snapshotting the database.
// storage.ErrNotFound is returned unwrapped when e was already removed.
func (s *EntryService) Delete(e entry.Entry) error {
	if err := s.store.Backup(); err != nil {
		return fmt.Errorf("failed to back up before delete: %w", err)
	}

	if err := s.store.DeleteByID(e.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Debug("entry already removed", logging.OperationKey, "delete", "id", e.ID)
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.logger.Debug("entry deleted", logging.OperationKey, "delete", "id", e.ID, "employee", e.Employee)
	return nil
}

// Count returns the number of stored entries.
func (s *EntryService) Count() (int, error) {
	n, err := s.store.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}
