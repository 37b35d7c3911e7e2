package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"storefront/pkg/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const migrationsDir = "sql"

// Up накатывает все миграции через database/sql обёртку над пулом pgx.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.With(logger.NewField("error", err)).Warn("failed to close migrations db handle")
		}
	}()

	migrationsFS, err := fs.Sub(embedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrationsFS)
	if err != nil {
		return fmt.Errorf("migrations provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, result := range results {
		log.With(
			logger.NewField("version", result.Source.Version),
			logger.NewField("file", result.Source.Path),
			logger.NewField("duration", result.Duration),
		).Info("migration applied")
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("migrations version: %w", err)
	}
	log.With(logger.NewField("version", version)).Info("database schema is up to date")

	return nil
}
