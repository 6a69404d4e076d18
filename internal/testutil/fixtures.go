package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"armory/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a LOGISTICS user with a unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithRole(t, db, models.RoleLogistics, nil)
}

// CreateTestUserWithRole creates a user with the given role and optional base.
func CreateTestUserWithRole(t *testing.T, db *gorm.DB, role models.Role, baseID *uint) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: fmt.Sprintf("user%d", nextID()),
		Password: string(hash),
		Role:     role,
		BaseID:   baseID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBase creates a base with a unique name.
func CreateTestBase(t *testing.T, db *gorm.DB) *models.Base {
	t.Helper()

	n := nextID()
	base := &models.Base{
		Name:      fmt.Sprintf("Test Base %d", n),
		Location:  fmt.Sprintf("Sector %d", n),
		Commander: "Col. Test",
		Budget:    decimal.NewFromInt(1000000),
	}
	if err := db.Create(base).Error; err != nil {
		t.Fatalf("failed to create test base: %v", err)
	}
	return base
}

// CreateTestAsset creates an AVAILABLE asset of the given type at baseID,
// without a ledger entry.
func CreateTestAsset(t *testing.T, db *gorm.DB, baseID *uint, assetType models.AssetType) *models.Asset {
	t.Helper()
	return CreateTestAssetWithStatus(t, db, baseID, assetType, models.AssetStatusAvailable)
}

// CreateTestAssetWithStatus creates an asset in the given status.
func CreateTestAssetWithStatus(t *testing.T, db *gorm.DB, baseID *uint, assetType models.AssetType, status models.AssetStatus) *models.Asset {
	t.Helper()

	n := nextID()
	serial := fmt.Sprintf("SN-%05d", n)
	asset := &models.Asset{
		Name:         fmt.Sprintf("Test Asset %d", n),
		SerialNumber: &serial,
		Type:         assetType,
		Status:       status,
		BaseID:       baseID,
		Condition:    models.AssetConditionGood,
		Value:        decimal.NewFromInt(1000),
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestTransaction appends a ledger entry at the given time.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, assetID uint, txType models.TransactionType, from, to *uint, at time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		AssetID:    assetID,
		Type:       txType,
		FromBaseID: from,
		ToBaseID:   to,
		UserID:     userID,
		Timestamp:  at,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// UintPtr returns a pointer to v.
func UintPtr(v uint) *uint {
	return &v
}
