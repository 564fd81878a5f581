// sqlite_ops.go provides SQLite connection management and low-level operations.
//
// Separated to isolate SQLite-specific concerns (pragmas, transactions,
// driver registration) from business logic. This is the only place the
// SQLite driver is imported, making it easier to swap builds if needed.
//
// Design: WAL mode with busy timeout balances concurrency and durability.
// WAL allows the backup tool to read consistently while a server process
// writes. The 5-second busy timeout prevents "database is locked" errors
// without waiting forever on stuck connections.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// SQLiteStore wraps a SQLite connection to the Tradex database. It owns
// pragma configuration and permission enforcement for the database file
// and its sidecars.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Open opens the database file at path through the given access backend
// and returns a configured SQLiteStore. The parent directory is created
// if missing. The caller should call Close on the returned store.
func Open(path string, access Access) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := access.Open(path)
	if err != nil {
		return nil, err
	}

	// WAL mode: allows concurrent readers while writing, and is what the
	// backup path relies on for its checkpoint-then-copy discipline.
	// Trade-off: creates -wal and -shm files alongside the database.
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Busy timeout: how long to wait when another connection holds a lock.
	// 5 seconds is generous - most operations complete in milliseconds.
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	// Synchronous NORMAL: with WAL mode, NORMAL is safe against corruption
	// (the WAL provides the durability guarantee). The only risk is losing
	// the last transaction on OS crash, acceptable for an operator tool
	// whose commands can be re-run.
	if _, err := db.Exec(`PRAGMA synchronous=NORMAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting synchronous mode: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.EnsurePermissions(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Init creates tables if they don't exist. Safe to call multiple times;
// the schema uses IF NOT EXISTS throughout.
func (s *SQLiteStore) Init() error {
	if err := execSchema(s.db); err != nil {
		return err
	}
	return s.EnsurePermissions()
}

// Close releases the database connection. Call before program exit to
// ensure all pending writes are flushed.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for maintenance operations that
// need raw pragma access.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Path returns the database file location this store was opened with.
func (s *SQLiteStore) Path() string {
	return s.path
}

// scanner abstracts sql.Row and sql.Rows, enabling a single scan function
// to handle both single-row and multi-row queries.
type scanner interface {
	Scan(dest ...any) error
}

// Tx executes fn within a database transaction, handling Begin/Commit/
// Rollback automatically. If fn returns an error the transaction is rolled
// back, otherwise it is committed. Rollback is deferred to handle panics
// and early returns; it is a no-op after commit.
func (s *SQLiteStore) Tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
