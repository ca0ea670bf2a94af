package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MarketData is a ticker snapshot for one symbol on one exchange at one
// instant. One row exists per (exchange, symbol, timestamp).
type MarketData struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExchangeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_market_data_exchange_symbol_ts;index:idx_market_data_exchange_ts" json:"exchange_id"`
	Symbol     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_market_data_exchange_symbol_ts;index:idx_market_data_symbol_ts" json:"symbol"`

	Price     decimal.Decimal  `gorm:"type:decimal(20,8);not null" json:"price"`
	BidPrice  *decimal.Decimal `gorm:"type:decimal(20,8)" json:"bid_price,omitempty"`
	AskPrice  *decimal.Decimal `gorm:"type:decimal(20,8)" json:"ask_price,omitempty"`
	Volume24h *decimal.Decimal `gorm:"type:decimal(20,8)" json:"volume_24h,omitempty"`
	Change24h *decimal.Decimal `gorm:"type:decimal(10,4)" json:"change_24h,omitempty"`
	High24h   *decimal.Decimal `gorm:"type:decimal(20,8)" json:"high_24h,omitempty"`
	Low24h    *decimal.Decimal `gorm:"type:decimal(20,8)" json:"low_24h,omitempty"`

	Timestamp time.Time `gorm:"not null;uniqueIndex:idx_market_data_exchange_symbol_ts;index:idx_market_data_symbol_ts;index:idx_market_data_exchange_ts" json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`

	Exchange *Exchange `gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName pins the table name; gorm's pluralizer leaves "data" alone but
// the migrations rely on the exact name.
func (MarketData) TableName() string { return "market_data" }

func (m *MarketData) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Spread is ask minus bid, zero when either side is missing.
func (m *MarketData) Spread() decimal.Decimal {
	if m.BidPrice == nil || m.AskPrice == nil {
		return decimal.Zero
	}
	return m.AskPrice.Sub(*m.BidPrice)
}

// SpreadPercentage is the spread relative to the last price, in percent.
// Zero when either book side is missing or the price is zero.
func (m *MarketData) SpreadPercentage() decimal.Decimal {
	if m.BidPrice == nil || m.AskPrice == nil || !m.Price.IsPositive() {
		return decimal.Zero
	}
	return m.Spread().Div(m.Price).Mul(decimal.NewFromInt(100))
}

// Validate checks the declared field constraints and reports every
// violation found.
func (m *MarketData) Validate() error {
	var v violations
	v.required("symbol", m.Symbol)
	v.maxLen("symbol", m.Symbol, 20)
	v.nonNegative("price", m.Price)
	v.nonNegativePtr("bid_price", m.BidPrice)
	v.nonNegativePtr("ask_price", m.AskPrice)
	v.nonNegativePtr("volume_24h", m.Volume24h)
	v.nonNegativePtr("high_24h", m.High24h)
	v.nonNegativePtr("low_24h", m.Low24h)
	if m.Timestamp.IsZero() {
		v.add("timestamp", "required", "must be set")
	}
	return v.err("MarketData")
}
