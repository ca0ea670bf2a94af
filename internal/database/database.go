// Package database is the connection factory: it turns the database
// configuration into a pooled gorm handle, retrying transient failures a
// bounded number of times, and optionally syncing the schema or running
// pending SQL migrations.
package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"trading-platform-db/internal/config"
	"trading-platform-db/internal/logger"
	"trading-platform-db/internal/models"
)

// DSN renders the keyword/value connection string for the Postgres driver.
func DSN(cfg *config.Database) string {
	sslmode := "disable"
	if cfg.SSL {
		sslmode = "require"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Name, sslmode,
	)
}

// NewDatabase builds the shared database handle from the configuration:
// connect with retry, then apply the schema-sync and migrations-run
// triggers when set. Schema sync must never be enabled in production.
func NewDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := Connect(&cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Synchronize {
		log.Warn("schema auto-sync enabled; do not use this in production")
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
	}

	if cfg.Database.MigrationsRun {
		if err := RunMigrations(&cfg.Database, log); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Connect opens a pooled gorm handle, retrying transient failures up to
// the configured attempt count with a fixed delay. Exhaustion yields a
// *ConnectionError; non-transient failures surface immediately.
func Connect(cfg *config.Database, log *zap.Logger) (*gorm.DB, error) {
	open := func() (*gorm.DB, error) {
		return openOnce(cfg, log)
	}
	return connectWithRetry(open, cfg.Retry, log)
}

type openFunc func() (*gorm.DB, error)

func connectWithRetry(open openFunc, retry config.Retry, log *zap.Logger) (*gorm.DB, error) {
	var lastErr error

	for attempt := 0; attempt <= retry.Attempts; attempt++ {
		if attempt > 0 {
			log.Warn("database connection failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", retry.Attempts),
				zap.Duration("delay", retry.Delay),
				zap.Error(lastErr),
			)
			time.Sleep(retry.Delay)
		}

		db, err := open()
		if err == nil {
			return db, nil
		}
		if !IsTransient(err) {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		lastErr = err
	}

	return nil, &ConnectionError{Attempts: retry.Attempts + 1, Err: lastErr}
}

func openOnce(cfg *config.Database, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.Logging {
		gormCfg.Logger = logger.NewGormAdapter(log)
	}

	db, err := gorm.Open(postgres.Open(DSN(cfg)), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Pool.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Pool.MinConns)
	sqlDB.SetConnMaxIdleTime(cfg.Pool.IdleTimeout)

	// A checkout that cannot be served within the acquire timeout fails
	// rather than blocking forever; verify the pool is usable up front.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Pool.AcquireTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// AutoMigrate syncs the schema to the current models. Development
// convenience only; production schemas come from the SQL migrations.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}
