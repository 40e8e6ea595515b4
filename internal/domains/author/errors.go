package author

import "book-catalog/internal/shared/apperror"

const entityName = "Author"

// ErrNotFound reports a missing author, carrying the id that was looked up.
func ErrNotFound(id int64) error {
	return apperror.NewNotFound(entityName, id)
}

// ErrDuplicateName reports a collision on the authors name uniqueness
// constraint.
func ErrDuplicateName(constraint string) error {
	return apperror.NewConflict(constraint)
}
