package author

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository defines the data access contract for authors. It is the only
// component permitted to issue persistence operations for this entity.
type Repository interface {
	// Create inserts a new author and returns it with the generated id.
	// A name collision surfaces as a conflict error carrying the violated
	// constraint name.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns the author or a not-found error carrying the id.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetPage returns one page of authors in insertion order together with
	// the total row count.
	GetPage(ctx context.Context, limit, offset int) ([]Author, int64, error)

	// WithTx returns a repository bound to the given transaction, so a
	// service can compose cross-entity operations atomically.
	WithTx(tx pgx.Tx) Repository
}
