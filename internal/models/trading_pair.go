package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TradingPair is a tradable market on one exchange, e.g. BTC/USDT on
// binance. A symbol is unique within its exchange.
type TradingPair struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ExchangeID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_trading_pairs_exchange_symbol;index" json:"exchange_id"`
	Symbol       string           `gorm:"type:varchar(20);not null;uniqueIndex:idx_trading_pairs_exchange_symbol;index" json:"symbol"`
	BaseAsset    string           `gorm:"type:varchar(10);not null" json:"base_asset"`
	QuoteAsset   string           `gorm:"type:varchar(10);not null" json:"quote_asset"`
	IsActive     bool             `gorm:"not null;index" json:"is_active"`
	MinOrderSize *decimal.Decimal `gorm:"type:decimal(20,8)" json:"min_order_size,omitempty"`
	MaxOrderSize *decimal.Decimal `gorm:"type:decimal(20,8)" json:"max_order_size,omitempty"`

	// Number of decimal places quoted by the venue, capped at 18.
	PricePrecision    int `gorm:"not null;default:8" json:"price_precision"`
	QuantityPrecision int `gorm:"not null;default:8" json:"quantity_precision"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Exchange *Exchange `gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *TradingPair) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Validate checks the declared field constraints and reports every
// violation found.
func (p *TradingPair) Validate() error {
	var v violations
	v.required("symbol", p.Symbol)
	v.maxLen("symbol", p.Symbol, 20)
	v.required("base_asset", p.BaseAsset)
	v.maxLen("base_asset", p.BaseAsset, 10)
	v.required("quote_asset", p.QuoteAsset)
	v.maxLen("quote_asset", p.QuoteAsset, 10)
	v.nonNegativePtr("min_order_size", p.MinOrderSize)
	v.nonNegativePtr("max_order_size", p.MaxOrderSize)
	v.intRange("price_precision", p.PricePrecision, 0, 18)
	v.intRange("quantity_precision", p.QuantityPrecision, 0, 18)
	return v.err("TradingPair")
}
