package book

import "book-catalog/internal/domains/author"

// Book is the domain entity backing the books table. Every book references
// exactly one existing author; Title is unique at the storage layer.
// Reads always join the author row, so Author is populated on entities
// returned by the repository.
type Book struct {
	ID            int64          `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Author        *author.Author `json:"author"`
	PublishedYear int            `json:"publishedYear" db:"published_year"`
	Genre         string         `json:"genre" db:"genre"`
}
