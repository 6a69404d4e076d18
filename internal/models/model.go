package models

import "time"

// Model contains common columns for mutable tables
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All lists every persisted model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&Base{},
		&User{},
		&Asset{},
		&Transaction{},
		&InventorySnapshot{},
		&AuditLog{},
	}
}
