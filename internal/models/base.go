package models

import "github.com/shopspring/decimal"

// Base is a physical installation that holds assets and carries a budget.
// Bases are never deleted.
type Base struct {
	Model
	Name      string          `gorm:"not null" json:"name"`
	Location  string          `gorm:"not null" json:"location"`
	Commander string          `json:"commander,omitempty"`
	Budget    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"budget"`
}
