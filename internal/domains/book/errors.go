package book

import "book-catalog/internal/shared/apperror"

const entityName = "Book"

// ErrNotFound reports a missing book, carrying the id that was looked up.
func ErrNotFound(id int64) error {
	return apperror.NewNotFound(entityName, id)
}

// ErrDuplicateTitle reports a collision on the books title uniqueness
// constraint.
func ErrDuplicateTitle(constraint string) error {
	return apperror.NewConflict(constraint)
}
