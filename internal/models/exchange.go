package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exchange is a trading venue. Deleting an exchange cascades to its
// trading pairs, market data and price history; positions, orders and
// transactions keep plain references.
type Exchange struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string            `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	DisplayName       string            `gorm:"type:varchar(100);not null" json:"display_name"`
	APIBaseURL        *string           `gorm:"type:varchar(255)" json:"api_base_url,omitempty"`
	IsActive          bool              `gorm:"not null;index" json:"is_active"`
	SupportedFeatures datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"supported_features"`
	FeeStructure      datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"fee_structure"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	TradingPairs []TradingPair  `gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE" json:"trading_pairs,omitempty"`
	Positions    []Position     `gorm:"foreignKey:ExchangeID" json:"-"`
	Orders       []Order        `gorm:"foreignKey:ExchangeID" json:"-"`
	Transactions []Transaction  `gorm:"foreignKey:ExchangeID" json:"-"`
	MarketData   []MarketData   `gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE" json:"-"`
	PriceHistory []PriceHistory `gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *Exchange) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// SupportsFeature reports whether a capability flag ("spot", "futures",
// "margin", "options") is set in the supported-features document.
func (e *Exchange) SupportsFeature(name string) bool {
	enabled, ok := e.SupportedFeatures[name].(bool)
	return ok && enabled
}

// Validate checks the declared field constraints and reports every
// violation found.
func (e *Exchange) Validate() error {
	var v violations
	v.required("name", e.Name)
	v.maxLen("name", e.Name, 100)
	v.required("display_name", e.DisplayName)
	v.maxLen("display_name", e.DisplayName, 100)
	if e.APIBaseURL != nil {
		v.maxLen("api_base_url", *e.APIBaseURL, 255)
		v.absoluteURL("api_base_url", *e.APIBaseURL)
	}
	return v.err("Exchange")
}
