package contact

import (
	"context"
	"fmt"
	"time"

	"bigrock/internal/adapters/storage"
	domain "bigrock/internal/domain/contact"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new contact request store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists one contact request.
// PRE: r passes Validate
// POST: the request is stored
func (s *SQLiteStore) Save(ctx context.Context, r domain.Request) error {
	if err := r.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_request (id, name, email, company, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		r.ID,
		r.Name,
		r.Email,
		r.Company,
		r.Message,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save contact_request: %w", err)
	}
	return nil
}

// List returns all requests, newest first.
// INVARIANT: Store state is not mutated
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Request, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, company, message, created_at
		FROM contact_request
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Request{}
	for rows.Next() {
		var r domain.Request
		var created string
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Company, &r.Message, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			r.CreatedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
