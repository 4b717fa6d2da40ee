package handler

import (
	tenantapp "github.com/arenda/backend/internal/application/tenant"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles renting-party API endpoints
type TenantHandler struct {
	BaseHandler
	tenantService *tenantapp.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *tenantapp.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Create registers a renting party
func (h *TenantHandler) Create(c *gin.Context) {
	var req tenantapp.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	t, err := h.tenantService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, t)
}

// GetByID retrieves a renting party by its ID
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	t, err := h.tenantService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, t)
}

// List returns renting parties matching the filter
func (h *TenantHandler) List(c *gin.Context) {
	var filter tenantapp.TenantListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	tenants, err := h.tenantService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenants)
}

// Update changes renting-party attributes. Identity fields only change while
// no lease references the tenant.
func (h *TenantHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	var req tenantapp.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	t, err := h.tenantService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, t)
}

// Delete removes a renting party that no lease references
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
