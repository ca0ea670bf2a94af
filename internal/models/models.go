// Package models declares the persisted entities of the trading platform
// and the derived-value computations attached to them. Entities are plain
// gorm structs; every imperative operation lives in the repository layer.
package models

// AllModels lists every entity in dependency order, parents before
// children, for schema auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Exchange{},
		&TradingPair{},
		&Portfolio{},
		&Position{},
		&Order{},
		&Transaction{},
		&MarketData{},
		&PriceHistory{},
	}
}
