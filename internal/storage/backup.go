package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// ErrNoBackup is returned by RestoreBackup when the requested backup is missing.
var ErrNoBackup = errors.New("backup does not exist")

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1 is the most recent)
	Path   string // The full path to the backup file
}

// BackupPath returns the path of backup n for the SQLite file at dbPath,
// in the form worklog.db.bak.N.
func BackupPath(dbPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", dbPath, BackupSuffix, n)
}

// rotateBackups shifts .bak.1 -> .bak.2 -> .bak.3, dropping the oldest.
// Missing files are skipped.
func rotateBackups(dbPath string) error {
	if err := os.Remove(BackupPath(dbPath, MaxBackupCount)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(dbPath, i), BackupPath(dbPath, i+1)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Backup snapshots the database into .bak.1 after rotating older backups.
// In-memory stores have nothing to back up.
func (s *Store) Backup() error {
	if s.path == MemoryPath {
		return nil
	}

	if err := rotateBackups(s.path); err != nil {
		return fmt.Errorf("rotate backups: %w", err)
	}

	if _, err := s.db.Exec("VACUUM INTO ?", BackupPath(s.path, 1)); err != nil {
		return fmt.Errorf("backup database: %w", err)
	}
	return nil
}

// ListBackups returns the existing backups of the file at dbPath, most
// recent first.
func ListBackups(dbPath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		path := BackupPath(dbPath, i)
		if _, err := os.Stat(path); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: path})
		}
	}
	return backups
}

// RestoreBackup replaces the file at dbPath with backup n. No store may
// have dbPath open while it runs.
func RestoreBackup(dbPath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	src, err := os.Open(BackupPath(dbPath, n))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("backup %d: %w", n, ErrNoBackup)
		}
		return err
	}
	defer src.Close()

	tmp := dbPath + ".restore"
	dst, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, dbPath)
}
