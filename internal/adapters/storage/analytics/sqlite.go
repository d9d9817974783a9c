package analytics

import (
	"context"
	"fmt"
	"time"

	"bigrock/internal/adapters/storage"
	domain "bigrock/internal/domain/analytics"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new analytics event store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Insert persists one event.
// PRE: e passes Validate
// POST: the event is stored; no other rows are modified
func (s *SQLiteStore) Insert(ctx context.Context, e domain.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analytics_event (id, kind, path, action, category, label, value, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.ID,
		string(e.Kind),
		e.Path,
		e.Action,
		e.Category,
		e.Label,
		e.Value,
		e.OccurredAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert analytics_event: %w", err)
	}
	return nil
}

// ListRecent returns up to limit events, newest first.
// PRE: limit > 0
// POST: Store state is not mutated
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, path, action, category, label, value, occurred_at
		FROM analytics_event
		ORDER BY occurred_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Event{}
	for rows.Next() {
		var e domain.Event
		var kind, occurred string
		if err := rows.Scan(&e.ID, &kind, &e.Path, &e.Action, &e.Category, &e.Label, &e.Value, &occurred); err != nil {
			return nil, err
		}
		e.Kind = domain.Kind(kind)
		if t, err := time.Parse(time.RFC3339Nano, occurred); err == nil {
			e.OccurredAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountSince returns the number of events at or after the given time.
func (s *SQLiteStore) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM analytics_event WHERE occurred_at >= ?
	`, since.UTC().Format(time.RFC3339Nano)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count analytics_event: %w", err)
	}
	return count, nil
}
