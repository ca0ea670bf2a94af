package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trading-platform-db/internal/database"
	"trading-platform-db/internal/models"
)

type MarketDataRepo struct {
	db *gorm.DB
}

func NewMarketDataRepo(db *gorm.DB) *MarketDataRepo {
	return &MarketDataRepo{db: db}
}

// Upsert inserts a ticker snapshot, replacing an existing row with the
// same (exchange, symbol, timestamp) key.
func (r *MarketDataRepo) Upsert(ctx context.Context, data *models.MarketData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(
		r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "exchange_id"}, {Name: "symbol"}, {Name: "timestamp"},
				},
				UpdateAll: true,
			}).
			Create(data).Error,
	)
}

// Latest returns the newest snapshot for a symbol on an exchange.
func (r *MarketDataRepo) Latest(ctx context.Context, exchangeID uuid.UUID, symbol string) (*models.MarketData, error) {
	var data models.MarketData
	err := r.db.WithContext(ctx).
		Where("exchange_id = ? AND symbol = ?", exchangeID, symbol).
		Order("timestamp DESC").
		First(&data).Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Range lists snapshots for a symbol within [from, to], oldest first.
func (r *MarketDataRepo) Range(ctx context.Context, exchangeID uuid.UUID, symbol string, from, to time.Time) ([]models.MarketData, error) {
	var data []models.MarketData
	err := r.db.WithContext(ctx).
		Where("exchange_id = ? AND symbol = ? AND timestamp BETWEEN ? AND ?", exchangeID, symbol, from, to).
		Order("timestamp").
		Find(&data).Error
	return data, err
}
