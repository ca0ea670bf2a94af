package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Portfolio groups a user's holdings. Deleting a portfolio cascades to its
// positions; the portfolio itself is soft-deleted when removed through the
// repository layer.
type Portfolio struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index;index:idx_portfolios_user_default" json:"user_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	TotalValue  decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"total_value"`
	CashBalance decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"cash_balance"`
	IsDefault   bool            `gorm:"not null;index:idx_portfolios_user_default" json:"is_default"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User         *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Positions    []Position    `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"positions,omitempty"`
	Orders       []Order       `gorm:"foreignKey:PortfolioID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:PortfolioID" json:"-"`
}

func (p *Portfolio) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// UnrealizedPnl sums unrealized P&L over the loaded positions. Positions
// must have been loaded explicitly; an empty slice yields zero.
func (p *Portfolio) UnrealizedPnl() decimal.Decimal {
	total := decimal.Zero
	for _, pos := range p.Positions {
		total = total.Add(pos.UnrealizedPnl)
	}
	return total
}

// RealizedPnl sums realized P&L over the loaded positions.
func (p *Portfolio) RealizedPnl() decimal.Decimal {
	total := decimal.Zero
	for _, pos := range p.Positions {
		total = total.Add(pos.RealizedPnl)
	}
	return total
}

// Validate checks the declared field constraints and reports every
// violation found.
func (p *Portfolio) Validate() error {
	var v violations
	v.required("name", p.Name)
	v.maxLen("name", p.Name, 100)
	v.nonNegative("total_value", p.TotalValue)
	v.nonNegative("cash_balance", p.CashBalance)
	return v.err("Portfolio")
}
