// Package storage persists work-log entries in a local SQLite file.
package storage

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/osutil"
)

// DBFile is the default name of the SQLite file
const DBFile = "worklog.db"

// MemoryPath opens a private in-memory store.
const MemoryPath = ":memory:"

//go:embed schema.sql
var schema string

var (
	// ErrNotFound is returned by DeleteByID when no entry has the given id.
	ErrNotFound = errors.New("entry not found")
	// ErrUnknownField is returned for a field with no backing column.
	ErrUnknownField = errors.New("unknown field")
)

// Direction is the sort order of a scan.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) sql() string {
	if d == Ascending {
		return "ASC"
	}
	return "DESC"
}

// Store handles database operations
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// GetStoragePath returns the default location of the SQLite file,
// creating the application directory if needed.
func GetStoragePath() (string, error) {
	return osutil.AppFile(DBFile)
}

// Open opens (creating if absent) the SQLite file at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One session, one connection. Also keeps :memory: stores coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the file the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Insert validates e, assigns it an id and (if unset) a timestamp, and
// writes it in a single statement.
func (s *Store) Insert(e entry.Entry) (entry.Entry, error) {
	if err := entry.Validate(e); err != nil {
		return entry.Entry{}, err
	}

	e.ID = uuid.New().String()
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now()
	}
	e.Timestamp = entry.Normalize(e.Timestamp)

	_, err := s.db.Exec(
		"INSERT INTO entries (id, employee, task_name, duration, notes, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
		e.ID, e.Employee, e.TaskName, e.Duration, e.Notes, entry.CanonicalTimestamp(e.Timestamp),
	)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("insert entry: %w", err)
	}

	return e, nil
}

// ScanOrderedBy returns every entry sorted by field. Entries sharing a value
// are ordered by insertion, in the same direction.
func (s *Store) ScanOrderedBy(field entry.Field, dir Direction) ([]entry.Entry, error) {
	col := field.Column()
	if col == "" {
		return nil, fmt.Errorf("scan entries: %w: %d", ErrUnknownField, field)
	}

	query := fmt.Sprintf(
		"SELECT id, employee, task_name, duration, notes, timestamp FROM entries ORDER BY %s %s, rowid %s",
		col, dir.sql(), dir.sql(),
	)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}
	defer rows.Close()

	entries := []entry.Entry{}
	for rows.Next() {
		var e entry.Entry
		var ts string
		if err := rows.Scan(&e.ID, &e.Employee, &e.TaskName, &e.Duration, &e.Notes, &ts); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if e.Timestamp, err = entry.ParseTimestamp(ts); err != nil {
			return nil, fmt.Errorf("scan entry %s: bad timestamp %q: %w", e.ID, ts, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}

	return entries, nil
}

// FilterWhere re-derives the scan ordered by order and keeps the entries
// whose field value satisfies pred, preserving scan order.
func (s *Store) FilterWhere(order entry.Field, dir Direction, field entry.Field, pred func(string) bool) ([]entry.Entry, error) {
	if field.Column() == "" {
		return nil, fmt.Errorf("filter entries: %w: %d", ErrUnknownField, field)
	}

	all, err := s.ScanOrderedBy(order, dir)
	if err != nil {
		return nil, err
	}

	matched := []entry.Entry{}
	for _, e := range all {
		if pred(e.Value(field)) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// DeleteByID removes the entry with the given id. It returns ErrNotFound
// if there is no such entry, which callers may treat as a no-op.
func (s *Store) DeleteByID(id string) error {
	res, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}
