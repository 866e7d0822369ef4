package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	gomigrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file:// migration source
	_ "github.com/jackc/pgx/v5/stdlib"                   // PostgreSQL driver for database/sql

	"github.com/allergyguard/preflight/internal/logger"
)

// BuiltinRunner applies SQL migration files from a directory using
// golang-migrate, for services that ship plain SQL migrations instead of a
// migration CLI. golang-migrate takes a PostgreSQL advisory lock, so
// concurrent container startups cannot apply migrations twice.
type BuiltinRunner struct {
	// URL is the database connection string.
	URL string

	// Source is the directory holding the migration files.
	Source string
}

// Run upgrades the schema to the latest revision. An already-up-to-date
// schema is success.
func (r *BuiltinRunner) Run(ctx context.Context) error {
	if r.Source == "" {
		return fmt.Errorf("migration source directory not configured")
	}

	log := logger.With(logger.Phase("migrate"))
	log.Info("Applying migrations", "source", r.Source)

	// golang-migrate drives database/sql, not pgx's native interface.
	db, err := sql.Open("pgx", r.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: "schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := gomigrate.NewWithDatabaseInstance("file://"+r.Source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, gomigrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, gomigrate.ErrNoChange) {
		log.Info("No migrations to apply (database is up to date)")
	} else {
		log.Info("Migrations completed successfully")
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, gomigrate.ErrNilVersion):
		log.Info("No migrations applied yet")
	case err != nil:
		return fmt.Errorf("failed to get migration version: %w", err)
	default:
		log.Info("Current schema version", "version", version, "dirty", dirty)
		if dirty {
			log.Warn("Database schema is in dirty state - manual intervention may be required")
		}
	}

	return nil
}
