package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/filter"
	"github.com/xolan/worklog/internal/index"
	"github.com/xolan/worklog/internal/logging"
	"github.com/xolan/worklog/internal/prompt"
	"github.com/xolan/worklog/internal/storage"
)

var (
	// ErrNoChoices is returned by Choices for strategies without a menu.
	ErrNoChoices = errors.New("strategy has no choice menu")
	// ErrUnknownStrategy is returned for a Strategy outside the enum.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// QueryService implements the retrieval strategies
type QueryService struct {
	store         Store
	loc           *time.Location
	caseSensitive bool
	// durationMatch builds the duration predicate. Durations are text, so
	// the default substring match lets "12" select "120" as well.
	durationMatch func(value string) filter.Predicate
	logger        *slog.Logger
}

// NewQueryService creates a new QueryService
func NewQueryService(store Store, cfg config.Config, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = logging.Discard()
	}

	cs := cfg.CaseSensitiveSearch
	durationMatch := func(v string) filter.Predicate { return filter.Contains(v, cs) }
	if cfg.DurationMatch == config.DurationMatchExact {
		durationMatch = func(v string) filter.Predicate { return filter.Equals(v, cs) }
	}

	return &QueryService{
		store:         store,
		loc:           cfg.Location(),
		caseSensitive: cs,
		durationMatch: durationMatch,
		logger:        logger,
	}
}

// Choices returns the distinct values offered by strategy's menu, in the
// order they first appear in the strategy's scan.
func (s *QueryService) Choices(strategy Strategy) ([]Choice, error) {
	var (
		order   entry.Field
		extract func(entry.Entry) Choice
	)

	switch strategy {
	case ByEmployee:
		order = entry.FieldEmployee
		extract = func(e entry.Entry) Choice {
			return Choice{Value: e.Employee, Label: e.Employee}
		}
	case ByDate:
		order = entry.FieldTimestamp
		extract = func(e entry.Entry) Choice {
			return Choice{
				Value: entry.CanonicalTimestamp(e.Timestamp),
				Label: s.FormatTimestamp(e.Timestamp),
			}
		}
	case ByDuration:
		order = entry.FieldTimestamp
		extract = func(e entry.Entry) Choice {
			return Choice{Value: e.Duration, Label: e.Duration}
		}
	case BySearchTerm:
		return nil, ErrNoChoices
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, strategy)
	}

	entries, err := s.store.ScanOrderedBy(order, storage.Descending)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return index.Distinct(entries, extract), nil
}

// Find returns the entries strategy selects for value. Matching is by
// containment on the strategy's field, so it re-scans the whole store
// rather than looking values up exactly.
func (s *QueryService) Find(strategy Strategy, value string) ([]entry.Entry, error) {
	var (
		entries []entry.Entry
		err     error
	)

	switch strategy {
	case ByEmployee:
		entries, err = s.store.FilterWhere(entry.FieldEmployee, storage.Descending,
			entry.FieldEmployee, filter.Contains(value, s.caseSensitive))
	case ByDate:
		// canonical timestamps have no letters, so case never matters
		entries, err = s.store.FilterWhere(entry.FieldTimestamp, storage.Descending,
			entry.FieldTimestamp, filter.Contains(value, true))
	case ByDuration:
		entries, err = s.store.FilterWhere(entry.FieldTimestamp, storage.Descending,
			entry.FieldDuration, s.durationMatch(value))
	case BySearchTerm:
		return s.Search(value)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, strategy)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	s.logger.Debug("query", logging.OperationKey, strategy.Label(), "value", value, "matches", len(entries))
	return entries, nil
}

// Search returns the entries, newest first, whose employee, task name or
// notes contain term.
func (s *QueryService) Search(term string) ([]entry.Entry, error) {
	entries, err := s.store.ScanOrderedBy(entry.FieldTimestamp, storage.Descending)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	matched := filter.FilterEntries(entries, filter.NewFilter(term, s.caseSensitive))
	s.logger.Debug("query", logging.OperationKey, BySearchTerm.Label(), "value", term, "matches", len(matched))
	return matched, nil
}

// Select runs a menu strategy end to end: it builds the choices, hands them
// to show, asks sel for an index and returns the matching entries. With no
// choices it returns prompt.ErrEmptyChoice without consulting sel.
func (s *QueryService) Select(strategy Strategy, sel prompt.Selector, show func([]Choice)) ([]entry.Entry, error) {
	choices, err := s.Choices(strategy)
	if err != nil {
		return nil, err
	}
	if len(choices) == 0 {
		return nil, prompt.ErrEmptyChoice
	}

	if show != nil {
		show(choices)
	}

	i, err := sel.SelectIndex(len(choices))
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(choices) {
		return nil, fmt.Errorf("selector returned %d for %d choices: %w", i, len(choices), prompt.ErrInvalidSelection)
	}

	return s.Find(strategy, choices[i].Value)
}

// All returns every entry, newest first.
func (s *QueryService) All() ([]entry.Entry, error) {
	entries, err := s.store.ScanOrderedBy(entry.FieldTimestamp, storage.Descending)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// FormatTimestamp renders t for display in the configured timezone.
func (s *QueryService) FormatTimestamp(t time.Time) string {
	return t.In(s.loc).Format(entry.DisplayLayout)
}
