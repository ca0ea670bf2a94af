package database

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"trading-platform-db/internal/config"
)

const migrationsDir = "file://migrations"

// RunMigrations applies every pending SQL migration from the migrations
// directory. The migrator keeps its own schema_migrations tracking table.
func RunMigrations(cfg *config.Database, log *zap.Logger) error {
	log.Info("starting database migration")

	sslmode := "disable"
	if cfg.SSL {
		sslmode = "require"
	}
	databaseURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.Username),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		cfg.Name,
		sslmode,
	)

	migration, err := migrate.New(migrationsDir, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migration.Close()

	if err := migration.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("database migration skipped, no pending changes")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("database migration performed successfully")
	return nil
}
