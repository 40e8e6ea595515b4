package apperror

import (
	"errors"
	"fmt"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFound("Author", 42)
	assert.Equal(t, "Author with id=42 not found", err.Error())
}

func TestConflictErrorMessage(t *testing.T) {
	assert.Equal(t, "unique constraint violated: uk_author_name", NewConflict("uk_author_name").Error())
	assert.Equal(t, "unique constraint violated", NewConflict("").Error())
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create author: %w", NewNotFound("Author", 7))

	var notFound *NotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, int64(7), notFound.ID)
	assert.Equal(t, "Author", notFound.Entity)
}

func TestFromValidation(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, FromValidation(nil))
	})

	t.Run("non-validation error passes through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Same(t, plain, FromValidation(plain))
	})

	t.Run("ozzo errors flatten to field map", func(t *testing.T) {
		verrs := validation.Errors{
			"name":  errors.New("is required"),
			"genre": errors.New("cannot be blank"),
		}

		err := FromValidation(verrs)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, map[string]string{
			"name":  "is required",
			"genre": "cannot be blank",
		}, ve.Fields)
	})
}
