package models

import "github.com/shopspring/decimal"

// AssetType is the equipment category of an asset
type AssetType string

const (
	AssetTypeVehicle       AssetType = "VEHICLE"
	AssetTypeWeapon        AssetType = "WEAPON"
	AssetTypeAmmunition    AssetType = "AMMUNITION"
	AssetTypeCommunication AssetType = "COMMUNICATION"
)

// Valid reports whether t is a known asset type
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeVehicle, AssetTypeWeapon, AssetTypeAmmunition, AssetTypeCommunication:
		return true
	}
	return false
}

// AssetStatus is the lifecycle status of an asset
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "AVAILABLE"
	AssetStatusAssigned    AssetStatus = "ASSIGNED"
	AssetStatusMaintenance AssetStatus = "MAINTENANCE"
	AssetStatusTransit     AssetStatus = "TRANSIT"
	AssetStatusExpended    AssetStatus = "EXPENDED"
)

// Valid reports whether s is a known asset status
func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusAvailable, AssetStatusAssigned, AssetStatusMaintenance, AssetStatusTransit, AssetStatusExpended:
		return true
	}
	return false
}

// Live reports whether an asset in this status counts toward a base's
// balance.
func (s AssetStatus) Live() bool {
	return s == AssetStatusAvailable || s == AssetStatusAssigned
}

// LiveStatuses are the statuses counted by closing balances.
var LiveStatuses = []AssetStatus{AssetStatusAvailable, AssetStatusAssigned}

// AssetCondition is the physical condition of an asset
type AssetCondition string

const (
	AssetConditionExcellent      AssetCondition = "EXCELLENT"
	AssetConditionGood           AssetCondition = "GOOD"
	AssetConditionFair           AssetCondition = "FAIR"
	AssetConditionPoor           AssetCondition = "POOR"
	AssetConditionNonOperational AssetCondition = "NON-OPERATIONAL"
)

// Valid reports whether c is a known condition. The empty condition is
// allowed since condition is optional.
func (c AssetCondition) Valid() bool {
	switch c {
	case "", AssetConditionExcellent, AssetConditionGood, AssetConditionFair, AssetConditionPoor, AssetConditionNonOperational:
		return true
	}
	return false
}

// Asset is a trackable item of equipment. BaseID is its current custody
// location and only changes through a transfer.
type Asset struct {
	Model
	Name         string          `gorm:"not null" json:"name"`
	Description  string          `json:"description,omitempty"`
	SerialNumber *string         `gorm:"uniqueIndex" json:"serial_number,omitempty"`
	Type         AssetType       `gorm:"type:varchar(16);not null;index" json:"type"`
	Status       AssetStatus     `gorm:"type:varchar(16);not null;default:AVAILABLE;index" json:"status"`
	BaseID       *uint           `gorm:"index" json:"base_id,omitempty"`
	Base         *Base           `gorm:"foreignKey:BaseID" json:"base,omitempty"`
	Condition    AssetCondition  `gorm:"type:varchar(16)" json:"condition,omitempty"`
	Value        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"value"`
}
