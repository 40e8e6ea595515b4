package database

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	"book-catalog/internal/config"
	"book-catalog/internal/db/migrations"
)

// Migrate applies all pending schema migrations. Goose needs a database/sql
// handle, so a short-lived stdlib connection is opened next to the pgx pool.
func Migrate(cfg config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	// The migrations directory is embedded, so "." addresses the root of
	// the embedded FS.
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info().Msg("schema migrations applied")
	return nil
}
