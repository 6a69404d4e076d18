package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"armory/internal/cache"
	"armory/internal/logger"
	"armory/internal/models"
)

func init() {
	logger.Init("test")
}

// ledgerFor returns every ledger entry of an asset in insertion order.
func ledgerFor(t *testing.T, db *gorm.DB, assetID uint) []models.Transaction {
	t.Helper()
	var entries []models.Transaction
	if err := db.Where("asset_id = ?", assetID).Order("id ASC").Find(&entries).Error; err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	return entries
}

// memoryCache returns a ReadCache over a fresh MemoryStore closed at test end.
func memoryCache(t *testing.T) ReadCache {
	t.Helper()
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	return ReadCache{Store: store, TTL: time.Minute}
}

func ptrEq(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
