package integration

import (
	"fmt"
	"net/http"
	"testing"

	"armory/internal/models"
)

func TestDashboardFlow_Balances(t *testing.T) {
	app := setupApp(t)
	admin := app.tokenFor(t, models.RoleAdmin)

	alpha := app.createBase(t, admin, "Alpha")
	bravo := app.createBase(t, admin, "Bravo")

	rifle := app.purchaseAsset(t, admin, alpha, "WEAPON", "WP-1")
	rounds := app.purchaseAsset(t, admin, alpha, "AMMUNITION", "AM-1")
	app.purchaseAsset(t, admin, bravo, "VEHICLE", "TK-1")

	// Prime the cache before the remaining movements.
	rec := app.request("GET", "/api/v1/dashboard/stats", "", admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats failed: %d %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["purchases"] != float64(3) {
		t.Fatalf("expected 3 purchases, got %s", rec.Body.String())
	}

	app.request("POST", fmt.Sprintf("/api/v1/assets/%.0f/transfer", rifle), fmt.Sprintf(`{"to_base_id":%.0f}`, bravo), admin)
	app.request("POST", fmt.Sprintf("/api/v1/assets/%.0f/assign", rounds), "", admin)
	app.request("POST", fmt.Sprintf("/api/v1/assets/%.0f/expend", rounds), "", admin)

	tests := []struct {
		name  string
		query string
		want  map[string]float64
	}{
		{
			name:  "whole estate",
			query: "",
			want: map[string]float64{
				"purchases": 3, "transfers_in": 1, "transfers_out": 1, "assigned": 1, "expended": 1,
				"net_movement": 3, "closing_balance": 2, "opening_balance": 0,
			},
		},
		{
			name:  "source base",
			query: fmt.Sprintf("base_id=%.0f", alpha),
			want: map[string]float64{
				"purchases": 2, "transfers_in": 0, "transfers_out": 1, "assigned": 1, "expended": 1,
				"net_movement": 1, "closing_balance": 0, "opening_balance": 0,
			},
		},
		{
			name:  "destination base",
			query: fmt.Sprintf("base_id=%.0f", bravo),
			want: map[string]float64{
				"purchases": 1, "transfers_in": 1, "transfers_out": 0, "assigned": 0, "expended": 0,
				"net_movement": 2, "closing_balance": 2, "opening_balance": 0,
			},
		},
		{
			name:  "asset type",
			query: "asset_type=AMMUNITION",
			want: map[string]float64{
				"purchases": 1, "transfers_in": 0, "transfers_out": 0, "assigned": 1, "expended": 1,
				"net_movement": 1, "closing_balance": 0, "opening_balance": 0,
			},
		},
		{
			name:  "period before any movement",
			query: "end_date=2000-01-01",
			want: map[string]float64{
				"purchases": 0, "net_movement": 0, "closing_balance": 2, "opening_balance": 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request("GET", "/api/v1/dashboard/stats?"+tt.query, "", admin)
			if rec.Code != http.StatusOK {
				t.Fatalf("stats failed: %d %s", rec.Code, rec.Body.String())
			}
			result := parseJSON(t, rec)
			for key, want := range tt.want {
				if result[key] != want {
					t.Errorf("%s: expected %v, got %v", key, want, result[key])
				}
			}
		})
	}
}

func TestDashboardFlow_EveryRoleCanRead(t *testing.T) {
	app := setupApp(t)

	for _, role := range []models.Role{models.RoleAdmin, models.RoleCommander, models.RoleLogistics} {
		token := app.tokenFor(t, role)
		rec := app.request("GET", "/api/v1/dashboard/stats", "", token)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", role, rec.Code)
		}
	}
}
