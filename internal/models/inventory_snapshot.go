package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventorySnapshot is the recorded inventory of one base at one instant.
// This is time-series data: no Model embed, one row per (base, instant).
type InventorySnapshot struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	BaseID      uint            `gorm:"not null;uniqueIndex:idx_snapshot_base_recorded" json:"base_id"`
	RecordedAt  time.Time       `gorm:"not null;uniqueIndex:idx_snapshot_base_recorded" json:"recorded_at"`
	Available   int64           `gorm:"not null" json:"available"`
	Assigned    int64           `gorm:"not null" json:"assigned"`
	Maintenance int64           `gorm:"not null" json:"maintenance"`
	InTransit   int64           `gorm:"not null" json:"in_transit"`
	Expended    int64           `gorm:"not null" json:"expended"`
	LiveValue   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"live_value"`
}
