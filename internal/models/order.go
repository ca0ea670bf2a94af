package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a trade instruction placed against an exchange. A nil Price
// means a market order. FilledQuantity is expected to stay at or below
// Quantity; the fill-state getters derive everything else from the two.
type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index;index:idx_orders_user_status_created" json:"user_id"`
	PortfolioID     uuid.UUID `gorm:"type:uuid;not null;index" json:"portfolio_id"`
	ExchangeID      uuid.UUID `gorm:"type:uuid;not null;index" json:"exchange_id"`
	ExchangeOrderID *string   `gorm:"type:varchar(100);index" json:"exchange_order_id,omitempty"`
	Symbol          string    `gorm:"type:varchar(20);not null;index" json:"symbol"`

	Type   OrderType   `gorm:"type:varchar(20);not null" json:"type"`
	Side   OrderSide   `gorm:"type:varchar(10);not null" json:"side"`
	Status OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index;index:idx_orders_user_status_created" json:"status"`

	Quantity         decimal.Decimal  `gorm:"type:decimal(20,8);not null" json:"quantity"`
	FilledQuantity   decimal.Decimal  `gorm:"type:decimal(20,8);not null;default:0" json:"filled_quantity"`
	Price            *decimal.Decimal `gorm:"type:decimal(20,8)" json:"price,omitempty"`
	StopPrice        *decimal.Decimal `gorm:"type:decimal(20,8)" json:"stop_price,omitempty"`
	AverageFillPrice *decimal.Decimal `gorm:"type:decimal(20,8)" json:"average_fill_price,omitempty"`
	Fee              decimal.Decimal  `gorm:"type:decimal(20,8);not null;default:0" json:"fee"`
	FeeAsset         *string          `gorm:"type:varchar(10)" json:"fee_asset,omitempty"`

	CreatedAt   time.Time  `gorm:"index;index:idx_orders_user_status_created" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	FilledAt    *time.Time `json:"filled_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// Relationships
	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Portfolio    *Portfolio    `gorm:"foreignKey:PortfolioID" json:"-"`
	Exchange     *Exchange     `gorm:"foreignKey:ExchangeID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:OrderID" json:"-"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// RemainingQuantity is the amount still to be filled.
func (o *Order) RemainingQuantity() decimal.Decimal {
	return o.Quantity.Sub(o.FilledQuantity)
}

// FillPercentage is filled quantity relative to the ordered quantity, in
// percent. Zero when the ordered quantity is zero.
func (o *Order) FillPercentage() decimal.Decimal {
	if !o.Quantity.IsPositive() {
		return decimal.Zero
	}
	return o.FilledQuantity.Div(o.Quantity).Mul(decimal.NewFromInt(100))
}

// IsPartiallyFilled reports a fill strictly between zero and the ordered
// quantity.
func (o *Order) IsPartiallyFilled() bool {
	return o.FilledQuantity.IsPositive() && o.FilledQuantity.LessThan(o.Quantity)
}

// IsFullyFilled reports whether the fill has reached the ordered quantity.
func (o *Order) IsFullyFilled() bool {
	return o.FilledQuantity.GreaterThanOrEqual(o.Quantity)
}

// TotalValue is the filled quantity priced at the average fill price,
// falling back to the limit price, else zero.
func (o *Order) TotalValue() decimal.Decimal {
	switch {
	case o.AverageFillPrice != nil:
		return o.FilledQuantity.Mul(*o.AverageFillPrice)
	case o.Price != nil:
		return o.FilledQuantity.Mul(*o.Price)
	default:
		return decimal.Zero
	}
}

// Validate checks the declared field constraints and reports every
// violation found.
func (o *Order) Validate() error {
	var v violations
	if o.ExchangeOrderID != nil {
		v.maxLen("exchange_order_id", *o.ExchangeOrderID, 100)
	}
	v.required("symbol", o.Symbol)
	v.maxLen("symbol", o.Symbol, 20)
	v.enum("type", o.Type.Valid(), string(o.Type))
	v.enum("side", o.Side.Valid(), string(o.Side))
	v.enum("status", o.Status.Valid(), string(o.Status))
	v.nonNegative("quantity", o.Quantity)
	v.nonNegative("filled_quantity", o.FilledQuantity)
	v.nonNegativePtr("price", o.Price)
	v.nonNegativePtr("stop_price", o.StopPrice)
	v.nonNegativePtr("average_fill_price", o.AverageFillPrice)
	v.nonNegative("fee", o.Fee)
	if o.FeeAsset != nil {
		v.maxLen("fee_asset", *o.FeeAsset, 10)
	}
	return v.err("Order")
}
