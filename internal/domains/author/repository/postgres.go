package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog/internal/domains/author"
	"book-catalog/pkg/database"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresRepository implements author.Repository on top of pgx.
type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository creates an author repository bound to the pool.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{db: pool}
}

// WithTx rebinds the repository to a running transaction.
func (r *postgresRepository) WithTx(tx pgx.Tx) author.Repository {
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, birth_year)
        VALUES ($1, $2)
        RETURNING id, name, birth_year
    `

	var created author.Author
	err := r.db.QueryRow(ctx, query, a.Name, a.BirthYear).Scan(
		&created.ID,
		&created.Name,
		&created.BirthYear,
	)

	if err != nil {
		if constraint, ok := database.UniqueViolation(err); ok {
			return nil, author.ErrDuplicateName(constraint)
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `
        SELECT id, name, birth_year
        FROM authors
        WHERE id = $1
    `

	var a author.Author
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.BirthYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrNotFound(id)
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetPage(ctx context.Context, limit, offset int) ([]author.Author, int64, error) {
	// Insertion order keeps pagination stable across requests.
	query, args, err := psql.
		Select("id", "name", "birth_year").
		From("authors").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build authors query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthYear); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("authors").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build authors count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}
