package author

import (
	"context"

	"book-catalog/internal/shared/page"
)

// Service defines business operations for the author domain.
// Validation of inbound payloads happens at the HTTP boundary; the service
// enforces cross-entity rules and translates absence into domain errors.
type Service interface {
	// Create persists a new author and returns it with the generated id.
	// Fails with a conflict error when the name collides with an existing
	// record (storage-level uniqueness constraint).
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetPage returns one page of authors in insertion order plus the
	// total count. The query is expected to be validated already.
	GetPage(ctx context.Context, q page.Query) ([]Author, int64, error)

	// GetByID returns the author or a not-found error carrying the id.
	GetByID(ctx context.Context, id int64) (*Author, error)
}
