package book

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository defines the data access contract for books. Reads join the
// author row explicitly, so returned entities always carry their author.
type Repository interface {
	// Create inserts a new book and returns it with the generated id.
	// The entity's Author must already be resolved. A title collision
	// surfaces as a conflict error carrying the violated constraint name.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns the book with its author, or a not-found error
	// carrying the id.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// GetPage returns one page of books in insertion order together with
	// the total row count.
	GetPage(ctx context.Context, limit, offset int) ([]Book, int64, error)

	// Update fully replaces the mutable columns of an existing book.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete removes the book, or returns a not-found error if it does
	// not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a repository bound to the given transaction.
	WithTx(tx pgx.Tx) Repository
}
