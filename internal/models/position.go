package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Position is a holding of one symbol inside a portfolio on one exchange.
// Market value and unrealized P&L are derived from quantity, average cost
// and current price; Recalculate re-establishes that invariant and runs on
// every save, overwriting whatever the caller put in those two fields.
type Position struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_positions_portfolio_exchange_symbol;index" json:"portfolio_id"`
	ExchangeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_positions_portfolio_exchange_symbol;index" json:"exchange_id"`
	Symbol      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_positions_portfolio_exchange_symbol;index" json:"symbol"`

	Quantity      decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"quantity"`
	AverageCost   decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"average_cost"`
	CurrentPrice  decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"current_price"`
	MarketValue   decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"market_value"`
	UnrealizedPnl decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"unrealized_pnl"`
	RealizedPnl   decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0" json:"realized_pnl"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Portfolio *Portfolio `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"-"`
	Exchange  *Exchange  `gorm:"foreignKey:ExchangeID" json:"-"`
}

func (p *Position) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeSave recomputes the derived fields so a persisted position can
// never carry a stale market value or unrealized P&L.
func (p *Position) BeforeSave(*gorm.DB) error {
	p.Recalculate()
	return nil
}

// Recalculate sets marketValue = quantity * currentPrice and
// unrealizedPnl = marketValue - quantity * averageCost.
func (p *Position) Recalculate() {
	p.MarketValue = p.Quantity.Mul(p.CurrentPrice)
	p.UnrealizedPnl = p.MarketValue.Sub(p.Quantity.Mul(p.AverageCost))
}

// TotalCost is the cost basis of the position.
func (p *Position) TotalCost() decimal.Decimal {
	return p.Quantity.Mul(p.AverageCost)
}

// PnlPercentage is the unrealized P&L relative to cost basis, in percent.
// Zero when the cost basis is zero.
func (p *Position) PnlPercentage() decimal.Decimal {
	cost := p.TotalCost()
	if cost.IsZero() {
		return decimal.Zero
	}
	return p.UnrealizedPnl.Div(cost).Mul(decimal.NewFromInt(100))
}

// Validate checks the declared field constraints and reports every
// violation found.
func (p *Position) Validate() error {
	var v violations
	v.required("symbol", p.Symbol)
	v.maxLen("symbol", p.Symbol, 20)
	v.nonNegative("average_cost", p.AverageCost)
	v.nonNegative("current_price", p.CurrentPrice)
	return v.err("Position")
}
