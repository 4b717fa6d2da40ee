package handler

import (
	propertyapp "github.com/arenda/backend/internal/application/property"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PremiseHandler handles premise-related API endpoints
type PremiseHandler struct {
	BaseHandler
	premiseService *propertyapp.PremiseService
}

// NewPremiseHandler creates a new PremiseHandler
func NewPremiseHandler(premiseService *propertyapp.PremiseService) *PremiseHandler {
	return &PremiseHandler{premiseService: premiseService}
}

// Create registers a new premise
func (h *PremiseHandler) Create(c *gin.Context) {
	var req propertyapp.CreatePremiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	premise, err := h.premiseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, premise)
}

// GetByID retrieves a premise by its ID
func (h *PremiseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid premise ID format")
		return
	}

	premise, err := h.premiseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, premise)
}

// List returns premises matching the filter, paginated
func (h *PremiseHandler) List(c *gin.Context) {
	var filter propertyapp.PremiseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.premiseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListAvailable returns FREE premises available right now
func (h *PremiseHandler) ListAvailable(c *gin.Context) {
	premises, err := h.premiseService.ListAvailable(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, premises)
}

// Update changes premise attributes
func (h *PremiseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid premise ID format")
		return
	}

	var req propertyapp.UpdatePremiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	premise, err := h.premiseService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, premise)
}

// Delete removes a premise that no lease references
func (h *PremiseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid premise ID format")
		return
	}

	if err := h.premiseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Import registers premises in bulk, one row at a time
func (h *PremiseHandler) Import(c *gin.Context) {
	var req propertyapp.ImportPremisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.premiseService.Import(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
