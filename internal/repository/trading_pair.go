package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trading-platform-db/internal/database"
	"trading-platform-db/internal/models"
)

type TradingPairRepo struct {
	db *gorm.DB
}

func NewTradingPairRepo(db *gorm.DB) *TradingPairRepo {
	return &TradingPairRepo{db: db}
}

func (r *TradingPairRepo) Create(ctx context.Context, pair *models.TradingPair) error {
	if err := pair.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Create(pair).Error)
}

func (r *TradingPairRepo) Save(ctx context.Context, pair *models.TradingPair) error {
	if err := pair.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Save(pair).Error)
}

// Get looks a pair up by its unique (exchange, symbol) key.
func (r *TradingPairRepo) Get(ctx context.Context, exchangeID uuid.UUID, symbol string) (*models.TradingPair, error) {
	var pair models.TradingPair
	err := r.db.WithContext(ctx).
		Where("exchange_id = ? AND symbol = ?", exchangeID, symbol).
		First(&pair).Error
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// FindActiveByExchange lists the tradable pairs of one exchange.
func (r *TradingPairRepo) FindActiveByExchange(ctx context.Context, exchangeID uuid.UUID) ([]models.TradingPair, error) {
	var pairs []models.TradingPair
	err := r.db.WithContext(ctx).
		Where("exchange_id = ? AND is_active = ?", exchangeID, true).
		Order("symbol").
		Find(&pairs).Error
	return pairs, err
}
