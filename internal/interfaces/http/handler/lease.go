package handler

import (
	billingapp "github.com/arenda/backend/internal/application/billing"
	leasingapp "github.com/arenda/backend/internal/application/leasing"
	paymentapp "github.com/arenda/backend/internal/application/payment"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaseHandler handles lease lifecycle API endpoints, including indexations
// and the per-lease billing history
type LeaseHandler struct {
	BaseHandler
	leaseService   *leasingapp.LeaseService
	billingService *billingapp.BillingService
	paymentService *paymentapp.PaymentService
}

// NewLeaseHandler creates a new LeaseHandler
func NewLeaseHandler(leaseService *leasingapp.LeaseService, billingService *billingapp.BillingService, paymentService *paymentapp.PaymentService) *LeaseHandler {
	return &LeaseHandler{
		leaseService:   leaseService,
		billingService: billingService,
		paymentService: paymentService,
	}
}

// Create drafts a lease contract
func (h *LeaseHandler) Create(c *gin.Context) {
	var req leasingapp.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	lease, err := h.leaseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, lease)
}

// GetByID retrieves a lease by its ID
func (h *LeaseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	lease, err := h.leaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lease)
}

// List returns leases matching the filter
func (h *LeaseHandler) List(c *gin.Context) {
	var filter leasingapp.LeaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	leases, err := h.leaseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, leases)
}

// Update changes contract terms of an editable lease
func (h *LeaseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	var req leasingapp.UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	lease, err := h.leaseService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lease)
}

// Activate assigns a contract number and marks the premise rented
func (h *LeaseHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	lease, err := h.leaseService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lease)
}

// Terminate starts winding a lease down
func (h *LeaseHandler) Terminate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	lease, err := h.leaseService.Terminate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lease)
}

// Close finishes a lease and frees the premise
func (h *LeaseHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	lease, err := h.leaseService.Close(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lease)
}

// Delete removes a DRAFT lease
func (h *LeaseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	if err := h.leaseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddIndexation records a rate multiplier effective from a date
func (h *LeaseHandler) AddIndexation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	var req leasingapp.AddIndexationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	ix, err := h.leaseService.AddIndexation(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ix)
}

// ListIndexations returns the indexations of a lease, newest effective first
func (h *LeaseHandler) ListIndexations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	indexations, err := h.leaseService.ListIndexations(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, indexations)
}

// RemoveIndexation deletes an indexation entry of the lease
func (h *LeaseHandler) RemoveIndexation(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	indexationID, err := uuid.Parse(c.Param("indexationId"))
	if err != nil {
		h.BadRequest(c, "Invalid indexation ID format")
		return
	}

	if err := h.leaseService.RemoveIndexation(c.Request.Context(), leaseID, indexationID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListAccruals returns the billing accruals of a lease
func (h *LeaseHandler) ListAccruals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	accruals, err := h.billingService.ListLeaseAccruals(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, accruals)
}

// ListInvoices returns the invoices of a lease
func (h *LeaseHandler) ListInvoices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	invoices, err := h.billingService.ListLeaseInvoices(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoices)
}

// ListPayments returns the payments linked to the lease's invoices
func (h *LeaseHandler) ListPayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lease ID format")
		return
	}

	payments, err := h.paymentService.ListByLease(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}
