package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "armory/internal/errors"
	"armory/internal/pagination"
	"armory/internal/services"
)

// SnapshotHandler handles inventory snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// ComputeSnapshotsRequest represents the request payload for computing snapshots.
type ComputeSnapshotsRequest struct {
	RecordedAt time.Time `json:"recorded_at" binding:"required"`
}

// SnapshotsRecordedResponse reports how many bases were recorded.
type SnapshotsRecordedResponse struct {
	SnapshotsRecorded int `json:"snapshots_recorded"`
}

// ComputeSnapshots handles computing and recording inventory snapshots.
// @Summary     Compute inventory snapshots
// @Description Record the per-status inventory of every base at recorded_at (pipeline endpoint)
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Param       X-API-Key header   string                    true "Pipeline API key"
// @Param       request   body     ComputeSnapshotsRequest   true "Snapshot parameters"
// @Success     200       {object} SnapshotsRecordedResponse "Snapshots recorded count"
// @Failure     400       {object} ErrorResponse             "Invalid input"
// @Failure     401       {object} ErrorResponse             "Invalid API key"
// @Failure     503       {object} ErrorResponse             "Pipeline not configured"
// @Router      /pipeline/snapshots [post]
func (h *SnapshotHandler) ComputeSnapshots(c *gin.Context) {
	var req ComputeSnapshotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	count, err := h.snapshotService.ComputeAndRecordSnapshots(c.Request.Context(), req.RecordedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SnapshotsRecordedResponse{SnapshotsRecorded: count})
}

// GetSnapshots handles retrieving a base's inventory snapshots.
// @Summary     Get inventory snapshots
// @Description Get paginated inventory snapshots of a base for a date range, newest first
// @Tags        bases
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int    true  "Base ID"
// @Param       from_date query string true  "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string true  "End date (RFC3339 or YYYY-MM-DD, a bare day is inclusive)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.InventorySnapshot] "Paginated snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Base not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bases/{id}/snapshots [get]
func (h *SnapshotHandler) GetSnapshots(c *gin.Context) {
	baseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseDateRange(c, "from_date", "to_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if from == nil || to == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from_date and to_date are required"))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.snapshotService.GetSnapshots(c.Request.Context(), baseID, *from, *to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
