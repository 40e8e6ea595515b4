package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog/internal/domains/author"
	"book-catalog/internal/shared/apperror"
	"book-catalog/internal/shared/page"
)

type mockAuthorRepo struct {
	createFn  func(ctx context.Context, a *author.Author) (*author.Author, error)
	getByIDFn func(ctx context.Context, id int64) (*author.Author, error)
	getPageFn func(ctx context.Context, limit, offset int) ([]author.Author, int64, error)
}

func (m *mockAuthorRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	return m.createFn(ctx, a)
}

func (m *mockAuthorRepo) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAuthorRepo) GetPage(ctx context.Context, limit, offset int) ([]author.Author, int64, error) {
	return m.getPageFn(ctx, limit, offset)
}

func (m *mockAuthorRepo) WithTx(tx pgx.Tx) author.Repository { return m }

func intPtr(v int) *int { return &v }

func TestCreateReturnsSavedEntity(t *testing.T) {
	repo := &mockAuthorRepo{
		createFn: func(_ context.Context, a *author.Author) (*author.Author, error) {
			saved := *a
			saved.ID = 1
			return &saved, nil
		},
	}
	svc := NewAuthorService(repo)

	req := &author.CreateAuthorRequest{Name: "Tolkien", BirthYear: intPtr(1892)}
	created, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Tolkien", created.Name)
	require.NotNil(t, created.BirthYear)
	assert.Equal(t, 1892, *created.BirthYear)
}

func TestCreateSurfacesConflict(t *testing.T) {
	repo := &mockAuthorRepo{
		createFn: func(_ context.Context, _ *author.Author) (*author.Author, error) {
			return nil, author.ErrDuplicateName("uk_author_name")
		},
	}
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "Tolkien"})

	var conflict *apperror.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "uk_author_name", conflict.Constraint)
}

func TestGetByIDNotFoundCarriesID(t *testing.T) {
	repo := &mockAuthorRepo{
		getByIDFn: func(_ context.Context, id int64) (*author.Author, error) {
			return nil, author.ErrNotFound(id)
		},
	}
	svc := NewAuthorService(repo)

	_, err := svc.GetByID(context.Background(), 99)

	var notFound *apperror.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Author", notFound.Entity)
	assert.Equal(t, int64(99), notFound.ID)
}

func TestGetPageTranslatesQueryToLimitOffset(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockAuthorRepo{
		getPageFn: func(_ context.Context, limit, offset int) ([]author.Author, int64, error) {
			gotLimit, gotOffset = limit, offset
			return []author.Author{{ID: 21, Name: "Lem"}}, 25, nil
		},
	}
	svc := NewAuthorService(repo)

	authors, total, err := svc.GetPage(context.Background(), page.Query{Page: 3, Size: 10})

	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 20, gotOffset)
	assert.Equal(t, int64(25), total)
	require.Len(t, authors, 1)
	assert.Equal(t, int64(21), authors[0].ID)
}
