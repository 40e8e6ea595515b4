package page

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-catalog/internal/shared/apperror"
)

// Query holds the 1-based pagination parameters of a list request.
type Query struct {
	Page int `json:"page" form:"page"`
	Size int `json:"size" form:"size"`
}

// ParseQuery builds a Query from raw query parameters. Missing or
// non-numeric values become zero and fail Validate afterwards.
func ParseQuery(pageStr, sizeStr string) Query {
	p, _ := strconv.Atoi(pageStr)
	s, _ := strconv.Atoi(sizeStr)
	return Query{Page: p, Size: s}
}

// Validate checks both parameters in one pass so the response can report
// every invalid parameter at once.
func (q Query) Validate() error {
	return apperror.FromValidation(validation.ValidateStruct(&q,
		validation.Field(&q.Page, validation.Required.Error("must be no less than 1"), validation.Min(1)),
		validation.Field(&q.Size, validation.Required.Error("must be no less than 1"), validation.Min(1)),
	))
}

func (q Query) Limit() int {
	return q.Size
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Size
}

// Pageable describes the position of a page inside the full result set.
type Pageable struct {
	PageNumber int  `json:"pageNumber"`
	PageSize   int  `json:"pageSize"`
	Offset     int  `json:"offset"`
	Paged      bool `json:"paged"`
	Unpaged    bool `json:"unpaged"`
}

// Page is a bounded, ordered slice of a larger result set plus metadata.
// Number and Pageable.PageNumber are 0-based even though clients request
// 1-based pages.
type Page[T any] struct {
	Content          []T      `json:"content"`
	Pageable         Pageable `json:"pageable"`
	TotalElements    int64    `json:"totalElements"`
	TotalPages       int      `json:"totalPages"`
	First            bool     `json:"first"`
	Last             bool     `json:"last"`
	Size             int      `json:"size"`
	Number           int      `json:"number"`
	NumberOfElements int      `json:"numberOfElements"`
	Empty            bool     `json:"empty"`
}

// New assembles a page from the content slice of a validated 1-based query
// and the total row count reported by the store.
func New[T any](content []T, q Query, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	number := q.Page - 1
	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))

	return Page[T]{
		Content: content,
		Pageable: Pageable{
			PageNumber: number,
			PageSize:   q.Size,
			Offset:     q.Offset(),
			Paged:      true,
			Unpaged:    false,
		},
		TotalElements:    total,
		TotalPages:       totalPages,
		First:            number == 0,
		Last:             number+1 >= totalPages,
		Size:             q.Size,
		Number:           number,
		NumberOfElements: len(content),
		Empty:            len(content) == 0,
	}
}
