package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"trading-platform-db/internal/database"
	"trading-platform-db/internal/models"
)

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, order *models.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Create(order).Error)
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// RecordFill applies a fill report to a loaded order: filled quantity,
// average fill price and the resulting status. A full fill stamps
// filled_at.
func (r *OrderRepo) RecordFill(ctx context.Context, order *models.Order, filled decimal.Decimal, avgPrice *decimal.Decimal) error {
	order.FilledQuantity = filled
	order.AverageFillPrice = avgPrice

	if order.IsFullyFilled() {
		order.Status = models.OrderStatusFilled
		now := time.Now().UTC()
		order.FilledAt = &now
	} else if order.IsPartiallyFilled() {
		order.Status = models.OrderStatusPartiallyFilled
	}

	if err := order.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Save(order).Error)
}

// Cancel marks a loaded order cancelled and stamps cancelled_at.
func (r *OrderRepo) Cancel(ctx context.Context, order *models.Order) error {
	order.Status = models.OrderStatusCancelled
	now := time.Now().UTC()
	order.CancelledAt = &now
	return database.ClassifyError(r.db.WithContext(ctx).Save(order).Error)
}

// FindOpenByUser lists a user's orders that can still fill, newest first.
func (r *OrderRepo) FindOpenByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []models.OrderStatus{
			models.OrderStatusPending,
			models.OrderStatusOpen,
			models.OrderStatusPartiallyFilled,
		}).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// FindByPortfolio lists every order of a portfolio, newest first.
func (r *OrderRepo) FindByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
