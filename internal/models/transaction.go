package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an immutable money or asset movement. Amount is stored as
// the caller recorded it and is never derived from quantity and price, so
// slippage and venue rounding survive in the historical record.
type Transaction struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_transactions_user_type_created" json:"user_id"`
	PortfolioID uuid.UUID  `gorm:"type:uuid;not null;index" json:"portfolio_id"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index" json:"order_id,omitempty"`
	ExchangeID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"exchange_id"`

	Type            TransactionType  `gorm:"type:varchar(20);not null;index;index:idx_transactions_user_type_created" json:"type"`
	Symbol          *string          `gorm:"type:varchar(20)" json:"symbol,omitempty"`
	Quantity        decimal.Decimal  `gorm:"type:decimal(20,8);not null" json:"quantity"`
	Price           *decimal.Decimal `gorm:"type:decimal(20,8)" json:"price,omitempty"`
	Amount          decimal.Decimal  `gorm:"type:decimal(20,8);not null" json:"amount"`
	Fee             decimal.Decimal  `gorm:"type:decimal(20,8);not null;default:0" json:"fee"`
	FeeAsset        *string          `gorm:"type:varchar(10)" json:"fee_asset,omitempty"`
	TransactionHash *string          `gorm:"type:varchar(255)" json:"transaction_hash,omitempty"`

	CreatedAt time.Time `gorm:"index;index:idx_transactions_user_type_created" json:"created_at"`

	// Relationships
	User      *User      `gorm:"foreignKey:UserID" json:"-"`
	Portfolio *Portfolio `gorm:"foreignKey:PortfolioID" json:"-"`
	Order     *Order     `gorm:"foreignKey:OrderID" json:"-"`
	Exchange  *Exchange  `gorm:"foreignKey:ExchangeID" json:"-"`
}

func (t *Transaction) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// NetAmount is the amount including fees: a buy costs amount plus fee,
// everything else yields amount minus fee.
func (t *Transaction) NetAmount() decimal.Decimal {
	if t.Type == TransactionTypeBuy {
		return t.Amount.Add(t.Fee)
	}
	return t.Amount.Sub(t.Fee)
}

// EffectivePrice is amount divided by quantity, zero when quantity is zero.
func (t *Transaction) EffectivePrice() decimal.Decimal {
	if !t.Quantity.IsPositive() {
		return decimal.Zero
	}
	return t.Amount.Div(t.Quantity)
}

// Validate checks the declared field constraints and reports every
// violation found.
func (t *Transaction) Validate() error {
	var v violations
	v.enum("type", t.Type.Valid(), string(t.Type))
	if t.Symbol != nil {
		v.maxLen("symbol", *t.Symbol, 20)
	}
	v.nonNegativePtr("price", t.Price)
	v.nonNegative("fee", t.Fee)
	if t.FeeAsset != nil {
		v.maxLen("fee_asset", *t.FeeAsset, 10)
	}
	if t.TransactionHash != nil {
		v.maxLen("transaction_hash", *t.TransactionHash, 255)
	}
	return v.err("Transaction")
}
