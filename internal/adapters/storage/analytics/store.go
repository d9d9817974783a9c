package analytics

import (
	"context"
	"time"

	domain "bigrock/internal/domain/analytics"
)

// Store persists first-party analytics events.
type Store interface {
	Insert(ctx context.Context, e domain.Event) error
	ListRecent(ctx context.Context, limit int) ([]domain.Event, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}
