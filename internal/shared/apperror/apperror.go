package apperror

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrMalformedPayload signals a request body that could not be decoded as JSON.
var ErrMalformedPayload = errors.New("malformed request body")

// NotFoundError reports that an entity with the given id does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func NewNotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%d not found", e.Entity, e.ID)
}

// ConflictError reports a storage-level uniqueness violation.
// Constraint carries the name of the violated constraint when the
// database exposes it.
type ConflictError struct {
	Constraint string
}

func NewConflict(constraint string) *ConflictError {
	return &ConflictError{Constraint: constraint}
}

func (e *ConflictError) Error() string {
	if e.Constraint == "" {
		return "unique constraint violated"
	}
	return fmt.Sprintf("unique constraint violated: %s", e.Constraint)
}

// ValidationError carries all field violations detected in a single
// validation pass over a request payload.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// FromValidation converts an ozzo validation result into a ValidationError,
// flattening the per-field errors into field -> message. A nil input stays nil
// and any non-validation error passes through unchanged.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		fields[field] = ferr.Error()
	}
	return &ValidationError{Fields: fields}
}
