package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "worklog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	return cfg
}

func setupServices(t *testing.T) (*Services, *storage.Store) {
	t.Helper()
	store := openStore(t)
	return NewServices(store, testConfig(), nil), store
}

var baseTime = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

// seed inserts entries with timestamps one minute apart, oldest first.
func seed(t *testing.T, s *storage.Store, rows ...[4]string) []entry.Entry {
	t.Helper()
	out := make([]entry.Entry, 0, len(rows))
	for i, r := range rows {
		e := entry.New(r[0], r[1], r[2], r[3])
		e.Timestamp = baseTime.Add(time.Duration(i) * time.Minute)
		saved, err := s.Insert(e)
		require.NoError(t, err)
		out = append(out, saved)
	}
	return out
}

func values(choices []Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Value
	}
	return out
}

func field(entries []entry.Entry, f entry.Field) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Value(f)
	}
	return out
}

// fixedSelector always answers with index (or err) and records the bound.
type fixedSelector struct {
	index int
	err   error
	bound int
	calls int
}

func (f *fixedSelector) SelectIndex(bound int) (int, error) {
	f.calls++
	f.bound = bound
	return f.index, f.err
}

var errBroken = errors.New("disk unavailable")

// brokenStore fails every call.
type brokenStore struct {
	backupErr error
}

func (brokenStore) Insert(entry.Entry) (entry.Entry, error) { return entry.Entry{}, errBroken }
func (brokenStore) ScanOrderedBy(entry.Field, storage.Direction) ([]entry.Entry, error) {
	return nil, errBroken
}
func (brokenStore) FilterWhere(entry.Field, storage.Direction, entry.Field, func(string) bool) ([]entry.Entry, error) {
	return nil, errBroken
}
func (brokenStore) DeleteByID(string) error { return errBroken }
func (brokenStore) Count() (int, error)     { return 0, errBroken }
func (b brokenStore) Backup() error         { return b.backupErr }
