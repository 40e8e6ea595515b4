package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog/internal/domains/author"
	"book-catalog/internal/domains/book"
	"book-catalog/pkg/database"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresRepository implements book.Repository on top of pgx. Reads join
// the authors table so the caller never triggers a second query for the
// author relation.
type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository creates a book repository bound to the pool.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{db: pool}
}

// WithTx rebinds the repository to a running transaction.
func (r *postgresRepository) WithTx(tx pgx.Tx) book.Repository {
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, author_id, published_year, genre)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	err := r.db.QueryRow(ctx, query, b.Title, b.Author.ID, b.PublishedYear, b.Genre).Scan(&b.ID)
	if err != nil {
		if constraint, ok := database.UniqueViolation(err); ok {
			return nil, book.ErrDuplicateTitle(constraint)
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	query := `
        SELECT b.id, b.title, b.published_year, b.genre,
               a.id, a.name, a.birth_year
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.id = $1
    `

	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrNotFound(id)
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) GetPage(ctx context.Context, limit, offset int) ([]book.Book, int64, error) {
	// Insertion order keeps pagination stable across requests.
	query, args, err := psql.
		Select("b.id", "b.title", "b.published_year", "b.genre",
			"a.id", "a.name", "a.birth_year").
		From("books b").
		Join("authors a ON a.id = b.author_id").
		OrderBy("b.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build books query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("books").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build books count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET title = $1, author_id = $2, published_year = $3, genre = $4
        WHERE id = $5
    `

	cmdTag, err := r.db.Exec(ctx, query, b.Title, b.Author.ID, b.PublishedYear, b.Genre, b.ID)
	if err != nil {
		if constraint, ok := database.UniqueViolation(err); ok {
			return nil, book.ErrDuplicateTitle(constraint)
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, book.ErrNotFound(b.ID)
	}

	return b, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrNotFound(id)
	}

	return nil
}

// scanBook scans the joined book+author column set shared by all reads.
func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	var a author.Author

	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.PublishedYear,
		&b.Genre,
		&a.ID,
		&a.Name,
		&a.BirthYear,
	)
	if err != nil {
		return nil, err
	}

	b.Author = &a
	return &b, nil
}
