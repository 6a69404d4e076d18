package services

import (
	"encoding/json"
	"testing"

	"armory/internal/models"
	"armory/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)
	user := testutil.CreateTestUser(t, db)

	svc.Log(user.ID, AuditActionAssetTransfer, "asset", 42, "10.0.0.1", map[string]interface{}{"to_base_id": 2})

	var entry models.AuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("expected audit entry: %v", err)
	}
	if entry.Action != AuditActionAssetTransfer || entry.ResourceID != 42 || entry.IPAddress != "10.0.0.1" {
		t.Errorf("unexpected audit entry %+v", entry)
	}

	var changes map[string]interface{}
	if err := json.Unmarshal([]byte(entry.Changes), &changes); err != nil {
		t.Fatalf("changes are not JSON: %v", err)
	}
	if changes["to_base_id"] != float64(2) {
		t.Errorf("expected to_base_id 2, got %v", changes["to_base_id"])
	}
}

func TestAuditLog_FailureIsSwallowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewAuditService(db)
	testutil.TeardownTestDB(t, db)

	// Must not panic or surface the closed-database error.
	svc.Log(1, AuditActionLogin, "user", 1, "", nil)
}
