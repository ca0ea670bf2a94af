package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trading-platform-db/internal/database"
	"trading-platform-db/internal/models"
)

type ExchangeRepo struct {
	db *gorm.DB
}

func NewExchangeRepo(db *gorm.DB) *ExchangeRepo {
	return &ExchangeRepo{db: db}
}

func (r *ExchangeRepo) Create(ctx context.Context, exchange *models.Exchange) error {
	if err := exchange.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Create(exchange).Error)
}

func (r *ExchangeRepo) Save(ctx context.Context, exchange *models.Exchange) error {
	if err := exchange.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Save(exchange).Error)
}

func (r *ExchangeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Exchange, error) {
	var exchange models.Exchange
	if err := r.db.WithContext(ctx).First(&exchange, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exchange, nil
}

func (r *ExchangeRepo) GetByName(ctx context.Context, name string) (*models.Exchange, error) {
	var exchange models.Exchange
	if err := r.db.WithContext(ctx).First(&exchange, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &exchange, nil
}

func (r *ExchangeRepo) FindActive(ctx context.Context) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&exchanges).Error
	return exchanges, err
}

// GetWithTradingPairs loads an exchange together with its trading pairs.
func (r *ExchangeRepo) GetWithTradingPairs(ctx context.Context, id uuid.UUID) (*models.Exchange, error) {
	var exchange models.Exchange
	err := r.db.WithContext(ctx).
		Preload("TradingPairs").
		First(&exchange, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exchange, nil
}

// Delete removes an exchange. The store cascades the delete to trading
// pairs, market data and price history.
func (r *ExchangeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.ClassifyError(
		r.db.WithContext(ctx).Delete(&models.Exchange{}, "id = ?", id).Error,
	)
}
