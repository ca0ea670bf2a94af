package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trading-platform-db/internal/database"
	"trading-platform-db/internal/models"
)

type TransactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// Create validates and inserts a transaction. Transactions are immutable;
// there is no save operation.
func (r *TransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Create(tx).Error)
}

func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// FindByPortfolio lists a portfolio's transactions, newest first.
func (r *TransactionRepo) FindByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

// FindByUserAndType lists a user's transactions of one type, newest first.
func (r *TransactionRepo) FindByUserAndType(ctx context.Context, userID uuid.UUID, txType models.TransactionType) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, txType).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

// FindByOrder lists the transactions booked against one order.
func (r *TransactionRepo) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at").
		Find(&txs).Error
	return txs, err
}
