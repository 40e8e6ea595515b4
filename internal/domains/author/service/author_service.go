package service

import (
	"context"

	"book-catalog/internal/domains/author"
	"book-catalog/internal/shared/page"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates an author service. The service depends on the
// repository abstraction, not a concrete store.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

// Create maps the request to an entity and persists it. A duplicate name
// surfaces from the storage uniqueness constraint as a conflict error.
func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *authorService) GetPage(ctx context.Context, q page.Query) ([]author.Author, int64, error) {
	return s.repo.GetPage(ctx, q.Limit(), q.Offset())
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}
