// Package sqlite implements the relational identity store on SQLite via
// database/sql. Email uniqueness is enforced by a UNIQUE column constraint,
// which is the single source of truth for registration conflicts.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	dirPermissions    = 0o750
	connectionTimeout = 5 * time.Second
)

// Config captures the settings for opening the SQLite database.
type Config struct {
	// Path is the database file. ":memory:" opens a private in-memory
	// database, used by tests.
	Path string
	// BusyTimeout is how long a statement waits on a locked database.
	BusyTimeout time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	email         TEXT    NOT NULL UNIQUE,
	password_hash TEXT    NOT NULL,
	full_name     TEXT    NOT NULL,
	role          TEXT    NOT NULL DEFAULT 'user',
	is_active     INTEGER NOT NULL DEFAULT 1,
	created_at    TEXT    NOT NULL,
	updated_at    TEXT    NOT NULL
);
`

// Open connects to the SQLite database, applies the connection pragmas,
// bootstraps the schema, and verifies connectivity with a ping.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), dirPermissions); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL",
			cfg.Path, busy.Milliseconds())
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite supports one writer; a single shared connection avoids lock
	// contention and keeps :memory: databases visible across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("verifying database connection: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrapping schema: %w", err)
	}

	return db, nil
}
