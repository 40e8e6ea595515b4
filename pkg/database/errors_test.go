package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	t.Run("unique violation with constraint name", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", ConstraintName: "uk_author_name"}

		constraint, ok := UniqueViolation(err)
		assert.True(t, ok)
		assert.Equal(t, "uk_author_name", constraint)
	})

	t.Run("wrapped unique violation", func(t *testing.T) {
		err := fmt.Errorf("failed to create author: %w",
			&pgconn.PgError{Code: "23505", ConstraintName: "uk_book_title"})

		constraint, ok := UniqueViolation(err)
		assert.True(t, ok)
		assert.Equal(t, "uk_book_title", constraint)
	})

	t.Run("other pg error codes do not match", func(t *testing.T) {
		_, ok := UniqueViolation(&pgconn.PgError{Code: "23503"})
		assert.False(t, ok)
	})

	t.Run("plain errors do not match", func(t *testing.T) {
		_, ok := UniqueViolation(errors.New("connection refused"))
		assert.False(t, ok)
	})
}
