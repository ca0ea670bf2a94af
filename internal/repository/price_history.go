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

type PriceHistoryRepo struct {
	db *gorm.DB
}

func NewPriceHistoryRepo(db *gorm.DB) *PriceHistoryRepo {
	return &PriceHistoryRepo{db: db}
}

// Upsert inserts a candle, replacing an existing row with the same
// (exchange, symbol, timeframe, timestamp) key. Venues routinely restate
// the still-open candle of the current bucket.
func (r *PriceHistoryRepo) Upsert(ctx context.Context, candle *models.PriceHistory) error {
	if err := candle.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(
		r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "exchange_id"}, {Name: "symbol"}, {Name: "timeframe"}, {Name: "timestamp"},
				},
				UpdateAll: true,
			}).
			Create(candle).Error,
	)
}

// Range lists candles for a symbol and timeframe within [from, to],
// oldest first.
func (r *PriceHistoryRepo) Range(ctx context.Context, exchangeID uuid.UUID, symbol string, timeframe models.Timeframe, from, to time.Time) ([]models.PriceHistory, error) {
	var candles []models.PriceHistory
	err := r.db.WithContext(ctx).
		Where(
			"exchange_id = ? AND symbol = ? AND timeframe = ? AND timestamp BETWEEN ? AND ?",
			exchangeID, symbol, timeframe, from, to,
		).
		Order("timestamp").
		Find(&candles).Error
	return candles, err
}

// Latest returns the newest candle for a symbol and timeframe.
func (r *PriceHistoryRepo) Latest(ctx context.Context, exchangeID uuid.UUID, symbol string, timeframe models.Timeframe) (*models.PriceHistory, error) {
	var candle models.PriceHistory
	err := r.db.WithContext(ctx).
		Where("exchange_id = ? AND symbol = ? AND timeframe = ?", exchangeID, symbol, timeframe).
		Order("timestamp DESC").
		First(&candle).Error
	if err != nil {
		return nil, err
	}
	return &candle, nil
}
