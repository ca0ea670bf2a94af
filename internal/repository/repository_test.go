package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"trading-platform-db/internal/models"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// sqlite leaves foreign keys off unless asked; without the pragma the
	// declared FK and cascade constraints are silently unenforced.
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see an empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dptr(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, NewUserRepo(db).Create(context.Background(), user))
	return user
}

func seedExchange(t *testing.T, db *gorm.DB) *models.Exchange {
	t.Helper()
	exchange := &models.Exchange{
		Name:        "binance",
		DisplayName: "Binance",
	}
	require.NoError(t, NewExchangeRepo(db).Create(context.Background(), exchange))
	return exchange
}

func seedPortfolio(t *testing.T, db *gorm.DB, user *models.User) *models.Portfolio {
	t.Helper()
	portfolio := &models.Portfolio{
		UserID: user.ID,
		Name:   "main",
	}
	require.NoError(t, NewPortfolioRepo(db).Create(context.Background(), portfolio))
	return portfolio
}
