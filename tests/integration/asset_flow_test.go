package integration

import (
	"fmt"
	"net/http"
	"testing"

	"armory/internal/models"
)

func TestAssetFlow_Lifecycle(t *testing.T) {
	app := setupApp(t)
	admin := app.tokenFor(t, models.RoleAdmin)

	alpha := app.createBase(t, admin, "Alpha")
	bravo := app.createBase(t, admin, "Bravo")
	rifle := app.purchaseAsset(t, admin, alpha, "WEAPON", "WP-100")

	// Purchase wrote one PURCHASE entry into alpha.
	rec := app.request("GET", fmt.Sprintf("/api/v1/transactions?asset_id=%.0f", rifle), "", admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("list transactions failed: %d %s", rec.Code, rec.Body.String())
	}
	page := parseJSON(t, rec)
	if page["total_items"] != float64(1) {
		t.Fatalf("expected 1 entry after purchase, got %v", page["total_items"])
	}
	entry := page["data"].([]interface{})[0].(map[string]interface{})
	if entry["type"] != "PURCHASE" || entry["to_base_id"] != alpha || entry["from_base_id"] != nil {
		t.Errorf("unexpected purchase entry %v", entry)
	}

	// Transfer to bravo.
	rec = app.request("POST", fmt.Sprintf("/api/v1/assets/%.0f/transfer", rifle),
		fmt.Sprintf(`{"to_base_id":%.0f,"notes":"Redeploy"}`, bravo), admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("transfer failed: %d %s", rec.Code, rec.Body.String())
	}
	asset := parseJSON(t, rec)["asset"].(map[string]interface{})
	if asset["base_id"] != bravo || asset["status"] != "AVAILABLE" {
		t.Errorf("unexpected asset after transfer %v", asset)
	}

	// Transferring to the holding base is rejected.
	rec = app.request("POST", fmt.Sprintf("/api/v1/assets/%.0f/transfer", rifle),
		fmt.Sprintf(`{"to_base_id":%.0f}`, bravo), admin)
	if rec.Code != http.StatusBadRequest || errorCode(t, rec) != "SAME_BASE_TRANSFER" {
		t.Fatalf("expected SAME_BASE_TRANSFER, got %d %s", rec.Code, rec.Body.String())
	}

	// Assign, return, expend.
	for _, step := range []struct {
		action string
		status string
	}{
		{"assign", "ASSIGNED"},
		{"return", "AVAILABLE"},
		{"expend", "EXPENDED"},
	} {
		rec = app.request("POST", fmt.Sprintf("/api/v1/assets/%.0f/%s", rifle, step.action), "", admin)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s failed: %d %s", step.action, rec.Code, rec.Body.String())
		}
		asset = parseJSON(t, rec)["asset"].(map[string]interface{})
		if asset["status"] != step.status {
			t.Errorf("after %s expected %s, got %v", step.action, step.status, asset["status"])
		}
	}

	// Full history, newest first.
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions?asset_id=%.0f", rifle), "", admin)
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(data))
	}
	wantTypes := []string{"EXPEND", "RETURN", "ASSIGN", "TRANSFER", "PURCHASE"}
	for i, raw := range data {
		if got := raw.(map[string]interface{})["type"]; got != wantTypes[i] {
			t.Errorf("entry %d: expected %s, got %v", i, wantTypes[i], got)
		}
	}

	// Base filter sees entries on either side of a movement.
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions?base_id=%.0f&type=TRANSFER", alpha), "", admin)
	if parseJSON(t, rec)["total_items"] != float64(1) {
		t.Errorf("expected alpha to see the outgoing transfer")
	}

	// Single entry lookup.
	id := data[0].(map[string]interface{})["id"].(float64)
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions/%.0f", id), "", admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("get transaction failed: %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/transactions/99999", "", admin)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAssetFlow_DuplicateSerialRejected(t *testing.T) {
	app := setupApp(t)
	admin := app.tokenFor(t, models.RoleAdmin)
	base := app.createBase(t, admin, "Charlie")

	app.purchaseAsset(t, admin, base, "VEHICLE", "TK-1")

	rec := app.request("POST", "/api/v1/assets",
		fmt.Sprintf(`{"name":"Copy","type":"VEHICLE","serial_number":"TK-1","base_id":%.0f}`, base), admin)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "DUPLICATE_SERIAL_NUMBER" {
		t.Errorf("expected DUPLICATE_SERIAL_NUMBER, got %s", code)
	}

	// The rejected purchase left no ledger entry.
	rec = app.request("GET", "/api/v1/transactions", "", admin)
	if parseJSON(t, rec)["total_items"] != float64(1) {
		t.Errorf("expected a single ledger entry, got %s", rec.Body.String())
	}
}

func TestAssetFlow_ListAndUpdate(t *testing.T) {
	app := setupApp(t)
	admin := app.tokenFor(t, models.RoleAdmin)
	base := app.createBase(t, admin, "Delta")

	app.purchaseAsset(t, admin, base, "WEAPON", "WP-1")
	radio := app.purchaseAsset(t, admin, base, "COMMUNICATION", "CM-1")

	rec := app.request("GET", "/api/v1/assets?type=COMMUNICATION", "", admin)
	if parseJSON(t, rec)["total_items"] != float64(1) {
		t.Fatalf("expected 1 communication asset, got %s", rec.Body.String())
	}

	// Attribute update leaves the ledger alone and refreshes cached lists.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/assets/%.0f", radio), `{"status":"MAINTENANCE","condition":"POOR"}`, admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/assets?status=MAINTENANCE", "", admin)
	if parseJSON(t, rec)["total_items"] != float64(1) {
		t.Errorf("expected the updated asset in MAINTENANCE listing")
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions?asset_id=%.0f", radio), "", admin)
	if parseJSON(t, rec)["total_items"] != float64(1) {
		t.Errorf("expected update to write no ledger entry")
	}
}
