package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trading-platform-db/internal/database"
	"trading-platform-db/internal/models"
)

type PortfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepo(db *gorm.DB) *PortfolioRepo {
	return &PortfolioRepo{db: db}
}

func (r *PortfolioRepo) Create(ctx context.Context, portfolio *models.Portfolio) error {
	if err := portfolio.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Create(portfolio).Error)
}

func (r *PortfolioRepo) Save(ctx context.Context, portfolio *models.Portfolio) error {
	if err := portfolio.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Save(portfolio).Error)
}

func (r *PortfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := r.db.WithContext(ctx).First(&portfolio, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// GetWithPositions loads a portfolio together with its positions, so the
// P&L folds have their inputs in memory.
func (r *PortfolioRepo) GetWithPositions(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := r.db.WithContext(ctx).
		Preload("Positions").
		First(&portfolio, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// FindByUser lists a user's portfolios, default portfolio first.
// Soft-deleted portfolios are excluded.
func (r *PortfolioRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at").
		Find(&portfolios).Error
	return portfolios, err
}

// SoftDelete stamps the portfolio's deletion marker; the row is kept.
func (r *PortfolioRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return database.ClassifyError(
		r.db.WithContext(ctx).Delete(&models.Portfolio{}, "id = ?", id).Error,
	)
}
