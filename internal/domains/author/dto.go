package author

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-catalog/internal/shared/apperror"
)

// MinNameLength is the shortest accepted author name.
const MinNameLength = 3

var noDigits = regexp.MustCompile(`^[^0-9]*$`)

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birthYear"`
}

// Validate checks every field in one pass and reports all violations
// together, so no storage call happens for an invalid payload.
func (r CreateAuthorRequest) Validate() error {
	return apperror.FromValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(MinNameLength, 0).Error("name must be at least 3 characters"),
			validation.Match(noDigits).Error("name must not contain digits"),
		),
	))
}

// ToEntity maps the validated request onto a new entity. The id is left for
// the store to assign.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name:      r.Name,
		BirthYear: r.BirthYear,
	}
}

// AuthorResponse is the wire representation of an author.
type AuthorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthYear *int   `json:"birthYear,omitempty"`
}

func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		BirthYear: a.BirthYear,
	}
}
