package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "armory/internal/errors"
	"armory/internal/models"
	"armory/internal/pagination"
	"armory/internal/services"
)

// TransactionHandler serves the ledger. Entries are written by the asset
// endpoints only.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions handles listing ledger entries.
// @Summary     List ledger entries
// @Description Get a paginated list of ledger entries, newest first, with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       base_id    query int    false "Filter by base on either side of the movement"
// @Param       asset_id   query int    false "Filter by asset"
// @Param       type       query string false "Filter by type (PURCHASE, TRANSFER, ASSIGN, RETURN, EXPEND)"
// @Param       asset_type query string false "Filter by asset type"
// @Param       start_date query string false "Filter by start date (RFC3339 e.g. 2024-01-01T00:00:00Z, or YYYY-MM-DD)"
// @Param       end_date   query string false "Filter by end date (RFC3339 or YYYY-MM-DD, a bare day is inclusive)"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated ledger entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter
	var err error

	if filter.BaseID, err = parseQueryID(c, "base_id"); err != nil {
		return filter, err
	}
	if filter.AssetID, err = parseQueryID(c, "asset_id"); err != nil {
		return filter, err
	}

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		if !txType.Valid() {
			return filter, apperrors.ErrInvalidTransactionType
		}
		filter.Type = &txType
	}

	if v := c.Query("asset_type"); v != "" {
		assetType := models.AssetType(v)
		if !assetType.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid asset_type")
		}
		filter.AssetType = &assetType
	}

	filter.StartDate, filter.EndDate, err = parseDateRange(c, "start_date", "end_date")
	return filter, err
}

// GetTransactionByID handles retrieving one ledger entry.
// @Summary     Get a ledger entry
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} map[string]models.Transaction "Ledger entry"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}
