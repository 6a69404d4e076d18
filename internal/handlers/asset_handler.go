package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "armory/internal/errors"
	"armory/internal/models"
	"armory/internal/pagination"
	"armory/internal/services"
)

// AssetHandler handles asset bookkeeping requests.
type AssetHandler struct {
	assetService services.AssetServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, auditService: auditService}
}

// PurchaseAssetRequest represents the request payload for purchasing an asset.
type PurchaseAssetRequest struct {
	Name         string                `json:"name" binding:"required,max=200"`
	Description  string                `json:"description" binding:"max=1000"`
	SerialNumber *string               `json:"serial_number" binding:"omitempty,max=100"`
	Type         models.AssetType      `json:"type" binding:"required,asset_type"`
	Status       models.AssetStatus    `json:"status" binding:"omitempty,asset_status"`
	BaseID       *uint                 `json:"base_id"`
	Condition    models.AssetCondition `json:"condition" binding:"omitempty,asset_condition"`
	Value        decimal.Decimal       `json:"value" swaggertype:"string" example:"6000000.00"`
	Notes        string                `json:"notes" binding:"max=500"`
}

// UpdateAssetRequest represents a partial asset update. Custody changes
// only through the transfer endpoint.
type UpdateAssetRequest struct {
	Name         *string                `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string                `json:"description" binding:"omitempty,max=1000"`
	SerialNumber *string                `json:"serial_number" binding:"omitempty,max=100"`
	Condition    *models.AssetCondition `json:"condition" binding:"omitempty,asset_condition"`
	Value        *decimal.Decimal       `json:"value" swaggertype:"string" example:"1200.00"`
	Status       *models.AssetStatus    `json:"status" binding:"omitempty,asset_status"`
}

// TransferAssetRequest represents the request payload for moving an asset.
type TransferAssetRequest struct {
	ToBaseID uint   `json:"to_base_id" binding:"required"`
	Notes    string `json:"notes" binding:"max=500"`
}

// NotesRequest is the optional body of assign, return and expend.
type NotesRequest struct {
	Notes string `json:"notes" binding:"max=500"`
}

// PurchaseAsset handles registering a purchased asset.
// @Summary     Purchase an asset
// @Description Register a new asset and append its PURCHASE ledger entry
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PurchaseAssetRequest true "Asset details"
// @Success     201 {object} map[string]models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate serial number"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Base not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) PurchaseAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PurchaseAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.PurchaseAsset(c.Request.Context(), userID, services.AssetInput{
		Name:         req.Name,
		Description:  req.Description,
		SerialNumber: req.SerialNumber,
		Type:         req.Type,
		Status:       req.Status,
		BaseID:       req.BaseID,
		Condition:    req.Condition,
		Value:        req.Value,
		Notes:        req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionAssetPurchase, "asset", asset.ID, c.ClientIP(),
		map[string]interface{}{"name": asset.Name, "type": asset.Type, "base_id": asset.BaseID, "value": asset.Value.String()})

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// ListAssets handles listing assets.
// @Summary     List assets
// @Description Get a paginated list of assets, newest first, with optional filters
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       base_id   query int    false "Filter by current base"
// @Param       type      query string false "Filter by asset type (VEHICLE, WEAPON, AMMUNITION, COMMUNICATION)"
// @Param       status    query string false "Filter by status (AVAILABLE, ASSIGNED, MAINTENANCE, TRANSIT, EXPENDED)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Paginated assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseAssetFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.assetService.ListAssets(c.Request.Context(), filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseAssetFilter(c *gin.Context) (services.AssetFilter, error) {
	var filter services.AssetFilter

	baseID, err := parseQueryID(c, "base_id")
	if err != nil {
		return filter, err
	}
	filter.BaseID = baseID

	if v := c.Query("type"); v != "" {
		assetType := models.AssetType(v)
		if !assetType.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be VEHICLE, WEAPON, AMMUNITION, or COMMUNICATION")
		}
		filter.Type = &assetType
	}

	if v := c.Query("status"); v != "" {
		status := models.AssetStatus(v)
		if !status.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetAsset handles retrieving one asset.
// @Summary     Get an asset
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} map[string]models.Asset "Asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateAsset handles updating descriptive fields and status.
// @Summary     Update an asset
// @Description Partially update an asset. No ledger entry is written.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Asset ID"
// @Param       request body UpdateAssetRequest true "Fields to update"
// @Success     200 {object} map[string]models.Asset "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate serial number"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), id, services.AssetUpdateFields{
		Name:         req.Name,
		Description:  req.Description,
		SerialNumber: req.SerialNumber,
		Condition:    req.Condition,
		Value:        req.Value,
		Status:       req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionAssetUpdate, "asset", asset.ID, c.ClientIP(),
		map[string]interface{}{"status": asset.Status, "condition": asset.Condition})

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// TransferAsset handles moving an asset to another base.
// @Summary     Transfer an asset
// @Description Move an asset to another base. It becomes AVAILABLE there and one TRANSFER entry records both bases.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Asset ID"
// @Param       request body TransferAssetRequest true "Destination"
// @Success     200 {object} map[string]models.Asset "Transferred asset"
// @Failure     400 {object} ErrorResponse "Invalid input or same base"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Asset or base not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/transfer [post]
func (h *AssetHandler) TransferAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransferAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.TransferAsset(c.Request.Context(), userID, id, req.ToBaseID, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionAssetTransfer, "asset", asset.ID, c.ClientIP(),
		map[string]interface{}{"to_base_id": req.ToBaseID})

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// AssignAsset handles assigning an asset at its current base.
// @Summary     Assign an asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int          true  "Asset ID"
// @Param       request body NotesRequest false "Optional notes"
// @Success     200 {object} map[string]models.Asset "Assigned asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/assign [post]
func (h *AssetHandler) AssignAsset(c *gin.Context) {
	h.changeStatus(c, h.assetService.AssignAsset, services.AuditActionAssetAssign)
}

// ReturnAsset handles returning an assigned asset.
// @Summary     Return an asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int          true  "Asset ID"
// @Param       request body NotesRequest false "Optional notes"
// @Success     200 {object} map[string]models.Asset "Returned asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/return [post]
func (h *AssetHandler) ReturnAsset(c *gin.Context) {
	h.changeStatus(c, h.assetService.ReturnAsset, services.AuditActionAssetReturn)
}

// ExpendAsset handles marking an asset expended.
// @Summary     Expend an asset
// @Description Mark an asset EXPENDED. It leaves the live inventory.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int          true  "Asset ID"
// @Param       request body NotesRequest false "Optional notes"
// @Success     200 {object} map[string]models.Asset "Expended asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/expend [post]
func (h *AssetHandler) ExpendAsset(c *gin.Context) {
	h.changeStatus(c, h.assetService.ExpendAsset, services.AuditActionAssetExpend)
}

type statusChangeFunc func(ctx context.Context, userID, assetID uint, notes string) (*models.Asset, error)

func (h *AssetHandler) changeStatus(c *gin.Context, change statusChangeFunc, action string) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	// The body is optional.
	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := change(c.Request.Context(), userID, id, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, action, "asset", asset.ID, c.ClientIP(),
		map[string]interface{}{"status": asset.Status})

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}
