package main

import (
	"fmt"

	"go.uber.org/zap"

	"trading-platform-db/internal/config"
	"trading-platform-db/internal/database"
	"trading-platform-db/internal/logger"
)

func main() {
	// Load application configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		panic(fmt.Sprintf("could not load config: %v", err))
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("Configuration loaded",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Name),
		zap.Bool("synchronize", cfg.Database.Synchronize),
		zap.Bool("migrations_run", cfg.Database.MigrationsRun),
	)

	// Connect and apply whatever schema triggers are enabled. On
	// exhausted retries this is fatal; process supervision owns backoff.
	db, err := database.NewDatabase(&cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool", zap.Error(err))
	}
	defer sqlDB.Close()

	log.Info("Database connection successful, schema is up to date.")
}
