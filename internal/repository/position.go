package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"trading-platform-db/internal/database"
	"trading-platform-db/internal/models"
)

type PositionRepo struct {
	db *gorm.DB
}

func NewPositionRepo(db *gorm.DB) *PositionRepo {
	return &PositionRepo{db: db}
}

// Save validates and persists a position. The BeforeSave hook recomputes
// market value and unrealized P&L, so whatever the caller put in those
// fields is overwritten before the row is written.
func (r *PositionRepo) Save(ctx context.Context, position *models.Position) error {
	if err := position.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Save(position).Error)
}

func (r *PositionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	var position models.Position
	if err := r.db.WithContext(ctx).First(&position, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

// Get looks a position up by its unique (portfolio, exchange, symbol) key.
func (r *PositionRepo) Get(ctx context.Context, portfolioID, exchangeID uuid.UUID, symbol string) (*models.Position, error) {
	var position models.Position
	err := r.db.WithContext(ctx).
		Where("portfolio_id = ? AND exchange_id = ? AND symbol = ?", portfolioID, exchangeID, symbol).
		First(&position).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *PositionRepo) FindByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Position, error) {
	var positions []models.Position
	err := r.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Order("symbol").
		Find(&positions).Error
	return positions, err
}

// UpdatePrice sets the current price on a loaded position and saves it,
// letting the recompute hook refresh the derived fields.
func (r *PositionRepo) UpdatePrice(ctx context.Context, position *models.Position, price decimal.Decimal) error {
	position.CurrentPrice = price
	return r.Save(ctx, position)
}
