// Package sqlite provides the SQLite store backing the tool-invocation audit
// trail. Uses modernc.org/sqlite — a pure-Go driver (no CGO required).
// Task 3.1: audit database with WAL mode and busy timeout.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Register the modernc sqlite driver under the name "sqlite"
	_ "modernc.org/sqlite"
)

// NewDB opens (or creates) the audit database at path and configures it:
//   - WAL journal mode (readers don't block the writer)
//   - 5-second busy timeout (tool calls can land concurrently)
//   - Synchronous=NORMAL (safe with WAL, faster than FULL)
//
// Use ":memory:" as path for in-memory databases in tests.
// Returns an error if the parent directory does not exist (will not create it).
func NewDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return nil, fmt.Errorf("sqlite.NewDB: parent directory %q does not exist", dir)
		}
	}

	// PRAGMAs applied at connection time via DSN query parameters;
	// modernc.org/sqlite supports _pragma=... params in the DSN.
	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.NewDB: open %q: %w", path, err)
	}

	// The audit log is append-only with a single writer path; a small pool
	// is plenty and keeps SQLITE_BUSY off the hot path. In-memory databases
	// exist per connection, so those are pinned to a single one.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(2)
	}

	if err := db.Ping(); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("sqlite.NewDB: ping %q: %w", path, err)
	}

	return db, nil
}
