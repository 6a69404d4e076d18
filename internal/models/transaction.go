package models

import (
	"errors"
	"time"

	"armory/internal/uuid"

	"gorm.io/gorm"
)

// ErrLedgerImmutable is returned when code tries to modify a ledger entry.
var ErrLedgerImmutable = errors.New("ledger entries are append-only")

// TransactionType represents the kind of event a ledger entry records
type TransactionType string

const (
	TransactionTypePurchase TransactionType = "PURCHASE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
	TransactionTypeAssign   TransactionType = "ASSIGN"
	TransactionTypeReturn   TransactionType = "RETURN"
	TransactionTypeExpend   TransactionType = "EXPEND"

	// Directional tags written by older clients. Direction is always taken
	// from the base fields, so these are treated exactly like TRANSFER.
	TransactionTypeTransferIn  TransactionType = "TRANSFER_IN"
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
)

// Valid reports whether t is a known transaction type
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypePurchase, TransactionTypeTransfer, TransactionTypeTransferIn,
		TransactionTypeTransferOut, TransactionTypeAssign, TransactionTypeReturn, TransactionTypeExpend:
		return true
	}
	return false
}

// IsTransfer reports whether t belongs to the transfer family
func (t TransactionType) IsTransfer() bool {
	return t == TransactionTypeTransfer || t == TransactionTypeTransferIn || t == TransactionTypeTransferOut
}

// Transaction is an immutable ledger entry recording one state change of an
// asset. Rows are only ever inserted.
type Transaction struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Reference  string          `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	AssetID    uint            `gorm:"not null;index" json:"asset_id"`
	Type       TransactionType `gorm:"type:varchar(16);not null;index" json:"type"`
	FromBaseID *uint           `gorm:"index" json:"from_base_id"`
	ToBaseID   *uint           `gorm:"index" json:"to_base_id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	Timestamp  time.Time       `gorm:"not null;index" json:"timestamp"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`

	// Relationships
	Asset    *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	FromBase *Base  `gorm:"foreignKey:FromBaseID" json:"from_base,omitempty"`
	ToBase   *Base  `gorm:"foreignKey:ToBaseID" json:"to_base,omitempty"`
	User     *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeCreate assigns the reference and defaults the timestamp to now.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Reference == "" {
		t.Reference = uuid.New()
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now().UTC()
	} else {
		t.Timestamp = t.Timestamp.UTC()
	}
	return nil
}

// BeforeUpdate rejects every update of a ledger entry.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return ErrLedgerImmutable
}

// BeforeDelete rejects every delete of a ledger entry.
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return ErrLedgerImmutable
}
