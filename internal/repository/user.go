// Package repository holds the explicit persistence operations of the
// data-access layer. Records are mutated by field assignment and handed to
// a save operation here; relationship loading is always an explicit query,
// never implicit graph traversal. Multi-entity atomicity is the caller's
// concern.
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trading-platform-db/internal/database"
	"trading-platform-db/internal/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create validates and inserts a user. Validation failures surface as
// *models.ValidationError before the store is touched.
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Create(user).Error)
}

// Save persists field assignments made on a loaded user.
func (r *UserRepo) Save(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return database.ClassifyError(r.db.WithContext(ctx).Save(user).Error)
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindActive lists users that are flagged active. Soft-deleted rows are
// excluded by gorm's DeletedAt handling.
func (r *UserRepo) FindActive(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at").
		Find(&users).Error
	return users, err
}

// SoftDelete stamps the user's deletion marker; the row is kept.
func (r *UserRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return database.ClassifyError(
		r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error,
	)
}
