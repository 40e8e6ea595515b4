package book

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-catalog/internal/domains/author"
	"book-catalog/internal/shared/apperror"
)

// MinTitleLength is the shortest accepted book title.
const MinTitleLength = 3

// BookRequest - POST /api/v1/books and PUT /api/v1/books/:id.
// Updates are full replacements, so create and update share the payload
// shape and every field is mandatory.
type BookRequest struct {
	Title         string `json:"title"`
	AuthorID      *int64 `json:"authorId"`
	PublishedYear *int   `json:"publishedYear"`
	Genre         string `json:"genre"`
}

// Validate checks every field in one pass and reports all violations
// together. Existence of the referenced author is a service concern, not a
// payload concern.
func (r BookRequest) Validate() error {
	return apperror.FromValidation(validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(MinTitleLength, 0).Error("title must be at least 3 characters"),
		),
		validation.Field(&r.AuthorID,
			validation.NotNil.Error("authorId is required"),
		),
		validation.Field(&r.PublishedYear,
			validation.NotNil.Error("publishedYear is required"),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
			validation.By(notBlank),
		),
	))
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// ToEntity maps the validated request onto a new entity. The author
// reference is resolved by the service before persisting.
func (r *BookRequest) ToEntity() *Book {
	return &Book{
		Title:         r.Title,
		PublishedYear: *r.PublishedYear,
		Genre:         r.Genre,
	}
}

// BookResponse is the wire representation of a book with its author nested.
type BookResponse struct {
	ID            int64                  `json:"id"`
	Title         string                 `json:"title"`
	Author        *author.AuthorResponse `json:"author"`
	PublishedYear int                    `json:"publishedYear"`
	Genre         string                 `json:"genre"`
}

func (b Book) ToResponse() *BookResponse {
	resp := &BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		PublishedYear: b.PublishedYear,
		Genre:         b.Genre,
	}
	if b.Author != nil {
		resp.Author = b.Author.ToResponse()
	}
	return resp
}
