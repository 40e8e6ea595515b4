package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog/internal/domains/author"
	"book-catalog/internal/shared/apperror"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func validRequest() BookRequest {
	return BookRequest{
		Title:         "Hobbit",
		AuthorID:      int64Ptr(1),
		PublishedYear: intPtr(1937),
		Genre:         "Fantasy",
	}
}

func TestBookRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validRequest().Validate())
	})

	t.Run("all violations reported in a single pass", func(t *testing.T) {
		err := BookRequest{}.Validate()

		var verr *apperror.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 4)
		assert.Equal(t, "title is required", verr.Fields["title"])
		assert.Equal(t, "authorId is required", verr.Fields["authorId"])
		assert.Equal(t, "publishedYear is required", verr.Fields["publishedYear"])
		assert.Equal(t, "genre is required", verr.Fields["genre"])
	})

	t.Run("title too short", func(t *testing.T) {
		req := validRequest()
		req.Title = "Go"

		err := req.Validate()

		var verr *apperror.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title must be at least 3 characters", verr.Fields["title"])
	})

	t.Run("blank genre", func(t *testing.T) {
		req := validRequest()
		req.Genre = "   "

		err := req.Validate()

		var verr *apperror.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "genre")
	})
}

func TestBookRequestToEntity(t *testing.T) {
	req := validRequest()

	b := req.ToEntity()

	assert.Zero(t, b.ID)
	assert.Equal(t, "Hobbit", b.Title)
	assert.Equal(t, 1937, b.PublishedYear)
	assert.Equal(t, "Fantasy", b.Genre)
	assert.Nil(t, b.Author)
}

func TestBookToResponse(t *testing.T) {
	b := Book{
		ID:            3,
		Title:         "Hobbit",
		Author:        &author.Author{ID: 1, Name: "Tolkien"},
		PublishedYear: 1937,
		Genre:         "Fantasy",
	}

	resp := b.ToResponse()

	assert.Equal(t, int64(3), resp.ID)
	require.NotNil(t, resp.Author)
	assert.Equal(t, int64(1), resp.Author.ID)
	assert.Equal(t, "Tolkien", resp.Author.Name)
	assert.Equal(t, 1937, resp.PublishedYear)
}
