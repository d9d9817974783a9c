package contact

import (
	"context"

	domain "bigrock/internal/domain/contact"
)

// Store persists contact/demo requests.
type Store interface {
	Save(ctx context.Context, r domain.Request) error
	List(ctx context.Context) ([]domain.Request, error)
}
