package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by all stores. *sql.DB satisfies it;
// tests may substitute wrappers.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode and foreign keys enabled; calling
// it again is a no-op
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS analytics_event (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		path TEXT NOT NULL DEFAULT '',
		action TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		label TEXT NOT NULL DEFAULT '',
		value INTEGER NOT NULL DEFAULT 0,
		occurred_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analytics_event_occurred
		ON analytics_event(occurred_at);

	CREATE TABLE IF NOT EXISTS contact_request (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
