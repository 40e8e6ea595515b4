package book

import (
	"context"

	"book-catalog/internal/shared/page"
)

// Service defines business operations for the book domain.
//
// Every write that touches two entities (author resolution plus the book
// write) runs inside a single transaction, with the author lookup strictly
// preceding the book write so a missing author never leaves partial state.
//
// Delete and Update on a missing book fail with a typed not-found error,
// consistent with GetByID.
type Service interface {
	// Create resolves the author reference and persists the new book.
	// Fails with a not-found error for the author when the reference is
	// dangling and a conflict error on a duplicate title.
	Create(ctx context.Context, req *BookRequest) (*Book, error)

	// GetPage returns one page of books in insertion order plus the
	// total count.
	GetPage(ctx context.Context, q page.Query) ([]Book, int64, error)

	// GetByID returns the book with its author.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// Update loads the existing book, resolves the new author reference
	// and fully replaces title, author, published year and genre.
	Update(ctx context.Context, id int64, req *BookRequest) (*Book, error)

	// Delete removes the book by id.
	Delete(ctx context.Context, id int64) error
}
