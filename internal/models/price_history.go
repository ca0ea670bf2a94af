package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceHistory is one OHLCV candle. One row exists per (exchange, symbol,
// timeframe, timestamp).
type PriceHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExchangeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_price_history_exchange_symbol_tf_ts;index:idx_price_history_exchange_tf_ts" json:"exchange_id"`
	Symbol     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_price_history_exchange_symbol_tf_ts;index:idx_price_history_symbol_tf_ts" json:"symbol"`
	Timeframe  Timeframe `gorm:"type:varchar(5);not null;uniqueIndex:idx_price_history_exchange_symbol_tf_ts;index:idx_price_history_symbol_tf_ts;index:idx_price_history_exchange_tf_ts" json:"timeframe"`

	OpenPrice  decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"open_price"`
	HighPrice  decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"high_price"`
	LowPrice   decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"low_price"`
	ClosePrice decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"close_price"`
	Volume     decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"volume"`

	Timestamp time.Time `gorm:"not null;uniqueIndex:idx_price_history_exchange_symbol_tf_ts;index:idx_price_history_symbol_tf_ts;index:idx_price_history_exchange_tf_ts" json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`

	Exchange *Exchange `gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PriceHistory) TableName() string { return "price_history" }

func (h *PriceHistory) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// PriceChange is close minus open.
func (h *PriceHistory) PriceChange() decimal.Decimal {
	return h.ClosePrice.Sub(h.OpenPrice)
}

// PriceChangePercentage is the change relative to the open, in percent.
// Zero when the open is zero.
func (h *PriceHistory) PriceChangePercentage() decimal.Decimal {
	if !h.OpenPrice.IsPositive() {
		return decimal.Zero
	}
	return h.PriceChange().Div(h.OpenPrice).Mul(decimal.NewFromInt(100))
}

// IsGreen reports whether the candle closed at or above its open.
func (h *PriceHistory) IsGreen() bool {
	return h.ClosePrice.GreaterThanOrEqual(h.OpenPrice)
}

// BodySize is the absolute distance between open and close.
func (h *PriceHistory) BodySize() decimal.Decimal {
	return h.ClosePrice.Sub(h.OpenPrice).Abs()
}

// UpperWick is the distance from the body top to the high.
func (h *PriceHistory) UpperWick() decimal.Decimal {
	return h.HighPrice.Sub(decimal.Max(h.OpenPrice, h.ClosePrice))
}

// LowerWick is the distance from the body bottom to the low.
func (h *PriceHistory) LowerWick() decimal.Decimal {
	return decimal.Min(h.OpenPrice, h.ClosePrice).Sub(h.LowPrice)
}

// Validate checks the declared field constraints and reports every
// violation found.
func (h *PriceHistory) Validate() error {
	var v violations
	v.required("symbol", h.Symbol)
	v.maxLen("symbol", h.Symbol, 20)
	v.enum("timeframe", h.Timeframe.Valid(), string(h.Timeframe))
	v.nonNegative("open_price", h.OpenPrice)
	v.nonNegative("high_price", h.HighPrice)
	v.nonNegative("low_price", h.LowPrice)
	v.nonNegative("close_price", h.ClosePrice)
	v.nonNegative("volume", h.Volume)
	if h.Timestamp.IsZero() {
		v.add("timestamp", "required", "must be set")
	}
	return v.err("PriceHistory")
}
