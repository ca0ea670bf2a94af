package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is an account holder. Users own portfolios, orders and transactions
// and are soft-deleted rather than removed.
type User struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string            `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash  string            `gorm:"type:varchar(255);not null" json:"-"`
	FirstName     *string           `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName      *string           `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	ProfileData   datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"profile_data"`
	IsActive      bool              `gorm:"not null;index" json:"is_active"`
	EmailVerified bool              `gorm:"not null" json:"email_verified"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Portfolios   []Portfolio   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"portfolios,omitempty"`
	Orders       []Order       `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName joins first and last name, tolerating either being unset.
func (u *User) FullName() string {
	var parts []string
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	return strings.Join(parts, " ")
}

// Validate checks the declared field constraints and reports every
// violation found.
func (u *User) Validate() error {
	var v violations
	v.required("email", u.Email)
	v.maxLen("email", u.Email, 255)
	if u.Email != "" {
		v.email("email", u.Email)
	}
	v.minLen("password_hash", u.PasswordHash, 8)
	v.maxLen("password_hash", u.PasswordHash, 255)
	if u.FirstName != nil {
		v.maxLen("first_name", *u.FirstName, 100)
	}
	if u.LastName != nil {
		v.maxLen("last_name", *u.LastName, 100)
	}
	return v.err("User")
}
