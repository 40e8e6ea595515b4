package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"book-catalog/internal/domains/author"
	"book-catalog/internal/domains/book"
	"book-catalog/internal/shared/page"
	"book-catalog/pkg/database"
)

// bookService implements book.Service. Writes that resolve the author
// reference run inside a single transaction so a missing author never
// results in a partially written book.
type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
	tx         database.TxManager
}

func NewBookService(repo book.Repository, authorRepo author.Repository, tx database.TxManager) book.Service {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
		tx:         tx,
	}
}

// Create resolves the author before persisting; the lookup precedes the
// insert inside one transaction.
func (s *bookService) Create(ctx context.Context, req *book.BookRequest) (*book.Book, error) {
	var created *book.Book

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		a, err := s.authorRepo.WithTx(tx).GetByID(ctx, *req.AuthorID)
		if err != nil {
			return err
		}

		b := req.ToEntity()
		b.Author = a

		created, err = s.repo.WithTx(tx).Create(ctx, b)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *bookService) GetPage(ctx context.Context, q page.Query) ([]book.Book, int64, error) {
	return s.repo.GetPage(ctx, q.Limit(), q.Offset())
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Update fully replaces title, author reference, published year and genre.
// Partial updates are not supported.
func (s *bookService) Update(ctx context.Context, id int64, req *book.BookRequest) (*book.Book, error) {
	var updated *book.Book

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		books := s.repo.WithTx(tx)

		b, err := books.GetByID(ctx, id)
		if err != nil {
			return err
		}

		a, err := s.authorRepo.WithTx(tx).GetByID(ctx, *req.AuthorID)
		if err != nil {
			return err
		}

		b.Title = req.Title
		b.Author = a
		b.PublishedYear = *req.PublishedYear
		b.Genre = req.Genre

		updated, err = books.Update(ctx, b)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the book, failing with a typed not-found error when it
// does not exist (same policy as GetByID).
func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
