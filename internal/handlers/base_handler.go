package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "armory/internal/errors"
	"armory/internal/pagination"
	"armory/internal/services"
)

// BaseHandler handles base-related requests.
type BaseHandler struct {
	baseService  services.BaseServicer
	auditService services.AuditServicer
}

// NewBaseHandler creates a new BaseHandler.
func NewBaseHandler(baseService services.BaseServicer, auditService services.AuditServicer) *BaseHandler {
	return &BaseHandler{baseService: baseService, auditService: auditService}
}

// CreateBaseRequest represents the request payload for creating a base.
type CreateBaseRequest struct {
	Name      string          `json:"name" binding:"required,max=100"`
	Location  string          `json:"location" binding:"required,max=200"`
	Commander string          `json:"commander" binding:"max=100"`
	Budget    decimal.Decimal `json:"budget" swaggertype:"string" example:"1000000.00"`
}

// UpdateBaseRequest represents a partial base update. Omitted fields are
// left unchanged.
type UpdateBaseRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Location  *string          `json:"location" binding:"omitempty,min=1,max=200"`
	Commander *string          `json:"commander" binding:"omitempty,max=100"`
	Budget    *decimal.Decimal `json:"budget" swaggertype:"string" example:"250000.00"`
}

// CreateBase handles creating a base.
// @Summary     Create a base
// @Description Register a new base with its location, commander and budget
// @Tags        bases
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBaseRequest true "Base details"
// @Success     201 {object} map[string]models.Base "Base created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bases [post]
func (h *BaseHandler) CreateBase(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	base, err := h.baseService.CreateBase(c.Request.Context(), services.BaseInput{
		Name:      req.Name,
		Location:  req.Location,
		Commander: req.Commander,
		Budget:    req.Budget,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionBaseCreate, "base", base.ID, c.ClientIP(),
		map[string]interface{}{"name": base.Name, "budget": base.Budget.String()})

	c.JSON(http.StatusCreated, gin.H{"base": base})
}

// ListBases handles listing bases.
// @Summary     List bases
// @Description Get a paginated list of bases
// @Tags        bases
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Base] "Paginated bases"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bases [get]
func (h *BaseHandler) ListBases(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.baseService.ListBases(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBase handles retrieving one base.
// @Summary     Get a base
// @Tags        bases
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Base ID"
// @Success     200 {object} map[string]models.Base "Base"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Base not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bases/{id} [get]
func (h *BaseHandler) GetBase(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	base, err := h.baseService.GetBase(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"base": base})
}

// UpdateBase handles a partial base update such as a budget change.
// @Summary     Update a base
// @Description Partially update a base. Omitted fields are left unchanged.
// @Tags        bases
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Base ID"
// @Param       request body UpdateBaseRequest true "Fields to update"
// @Success     200 {object} map[string]models.Base "Updated base"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Base not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bases/{id} [patch]
func (h *BaseHandler) UpdateBase(c *gin.Context) {
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

	var req UpdateBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	base, err := h.baseService.UpdateBase(c.Request.Context(), id, services.BaseUpdateFields{
		Name:      req.Name,
		Location:  req.Location,
		Commander: req.Commander,
		Budget:    req.Budget,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Location != nil {
		changes["location"] = *req.Location
	}
	if req.Commander != nil {
		changes["commander"] = *req.Commander
	}
	if req.Budget != nil {
		changes["budget"] = req.Budget.String()
	}
	h.auditService.Log(userID, services.AuditActionBaseUpdate, "base", base.ID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, gin.H{"base": base})
}
