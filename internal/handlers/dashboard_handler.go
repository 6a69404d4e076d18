package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "armory/internal/errors"
	"armory/internal/models"
	"armory/internal/services"
)

// DashboardHandler serves movement summaries.
type DashboardHandler struct {
	statsService services.StatsServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(statsService services.StatsServicer) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// GetStats handles the dashboard summary.
// @Summary     Dashboard statistics
// @Description Movement counts for the filtered period with derived opening and closing balances
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       base_id    query int    false "Restrict to one base"
// @Param       start_date query string false "Period start (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string false "Period end (RFC3339 or YYYY-MM-DD, a bare day is inclusive)"
// @Param       asset_type query string false "Restrict to one asset type"
// @Success     200 {object} services.DashboardStats "Dashboard statistics"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var filter services.DashboardFilter
	var err error

	if filter.BaseID, err = parseQueryID(c, "base_id"); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.StartDate, filter.EndDate, err = parseDateRange(c, "start_date", "end_date"); err != nil {
		respondWithError(c, err)
		return
	}
	if v := c.Query("asset_type"); v != "" {
		assetType := models.AssetType(v)
		if !assetType.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid asset_type"))
			return
		}
		filter.AssetType = &assetType
	}

	stats, err := h.statsService.GetDashboardStats(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
