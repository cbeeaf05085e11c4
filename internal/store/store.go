// Package store provides SQLite-backed persistence for bookings, budget
// history, and manual forecast overrides.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

// StorageError wraps a failure of the underlying persistence medium. The
// engine never retries; retry policy, if any, belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// Store is the SQLite database handle.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dbPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, storageErr("create db dir", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, storageErr("open db", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, storageErr("create schema", err)
	}

	return &Store{db: db}, nil
}

// OpenMemory opens an in-memory store, used by tests.
func OpenMemory() (*Store, error) {
	return Open(":memory:")
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultPath returns the database location under the user config dir,
// ~/.config/hourburn/hourburn.db unless XDG_CONFIG_HOME overrides it.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hourburn", "hourburn.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hourburn", "hourburn.db")
}
