package container

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"book-catalog/internal/config"
	"book-catalog/internal/infrastructure/database"
	pkgdatabase "book-catalog/pkg/database"

	"book-catalog/internal/domains/author"
	authorHandler "book-catalog/internal/domains/author/handler"
	authorRepo "book-catalog/internal/domains/author/repository"
	authorService "book-catalog/internal/domains/author/service"

	"book-catalog/internal/domains/book"
	bookHandler "book-catalog/internal/domains/book/handler"
	bookRepo "book-catalog/internal/domains/book/repository"
	bookService "book-catalog/internal/domains/book/service"
)

// Container is the root of the dependency graph: config, pool, repositories,
// services and handlers, initialized in that order.
type Container struct {
	Config *config.Config
	Pool   *pgxpool.Pool

	AuthorRepo author.Repository
	BookRepo   book.Repository

	AuthorService author.Service
	BookService   book.Service

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer loads configuration, connects the database, applies pending
// migrations and wires all dependencies. Any failure aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	pool, err := database.Connect(context.Background(), cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.Pool = pool

	if err := database.Migrate(cfg.Database); err != nil {
		pool.Close()
		return nil, err
	}

	txManager := pkgdatabase.NewTxManager(pool)

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, txManager)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases long-lived resources on shutdown.
func (c *Container) Cleanup() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}
