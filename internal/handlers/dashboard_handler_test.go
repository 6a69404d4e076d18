package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"armory/internal/models"
	"armory/internal/services"
)

func setupDashboardRouter(handler *DashboardHandler) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard/stats", injectUserID(1), handler.GetStats)
	return r
}

func TestDashboardHandler_GetStats(t *testing.T) {
	t.Run("returns stats for the filter", func(t *testing.T) {
		var got services.DashboardFilter
		statsSvc := &mockStatsService{
			getDashboardStatsFn: func(_ context.Context, filter services.DashboardFilter) (*services.DashboardStats, error) {
				got = filter
				return &services.DashboardStats{
					Purchases:      2,
					TransfersIn:    1,
					TransfersOut:   1,
					Expended:       1,
					NetMovement:    2,
					ClosingBalance: 5,
					OpeningBalance: 4,
				}, nil
			},
		}
		r := setupDashboardRouter(NewDashboardHandler(statsSvc))

		rec := doRequest(r, "GET", "/dashboard/stats?base_id=1&asset_type=AMMUNITION&start_date=2024-01-01&end_date=2024-06-30", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.BaseID == nil || *got.BaseID != 1 {
			t.Errorf("expected base 1, got %v", got.BaseID)
		}
		if got.AssetType == nil || *got.AssetType != models.AssetTypeAmmunition {
			t.Errorf("expected AMMUNITION, got %v", got.AssetType)
		}
		if got.StartDate == nil || got.EndDate == nil {
			t.Fatal("expected both dates parsed")
		}

		result := parseJSON(t, rec)
		for key, want := range map[string]float64{
			"purchases":       2,
			"transfers_in":    1,
			"transfers_out":   1,
			"assigned":        0,
			"expended":        1,
			"net_movement":    2,
			"closing_balance": 5,
			"opening_balance": 4,
		} {
			if result[key] != want {
				t.Errorf("expected %s=%v, got %v", key, want, result[key])
			}
		}
	})

	t.Run("no filters means whole estate", func(t *testing.T) {
		var got services.DashboardFilter
		statsSvc := &mockStatsService{
			getDashboardStatsFn: func(_ context.Context, filter services.DashboardFilter) (*services.DashboardStats, error) {
				got = filter
				return &services.DashboardStats{}, nil
			},
		}
		r := setupDashboardRouter(NewDashboardHandler(statsSvc))

		rec := doRequest(r, "GET", "/dashboard/stats", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.BaseID != nil || got.AssetType != nil || got.StartDate != nil || got.EndDate != nil {
			t.Errorf("expected empty filter, got %+v", got)
		}
	})

	for _, query := range []string{"base_id=-1", "asset_type=SPACESHIP", "start_date=2024-13-01", "start_date=2024-05-01&end_date=2024-04-01"} {
		t.Run("returns 400 on "+query, func(t *testing.T) {
			r := setupDashboardRouter(NewDashboardHandler(&mockStatsService{}))

			rec := doRequest(r, "GET", "/dashboard/stats?"+query, "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("hides internal failures", func(t *testing.T) {
		statsSvc := &mockStatsService{
			getDashboardStatsFn: func(_ context.Context, _ services.DashboardFilter) (*services.DashboardStats, error) {
				return nil, errors.New("connection reset")
			},
		}
		r := setupDashboardRouter(NewDashboardHandler(statsSvc))

		rec := doRequest(r, "GET", "/dashboard/stats", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}
