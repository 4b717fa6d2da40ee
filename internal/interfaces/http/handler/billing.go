package handler

import (
	billingapp "github.com/arenda/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillingHandler handles billing run, invoice and VAT setting API endpoints
type BillingHandler struct {
	BaseHandler
	billingService *billingapp.BillingService
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(billingService *billingapp.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Run generates accruals and invoices for a billing period. Reruns skip
// leases already billed.
func (h *BillingHandler) Run(c *gin.Context) {
	var req billingapp.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.billingService.Run(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListAccruals returns the accruals of a billing period
func (h *BillingHandler) ListAccruals(c *gin.Context) {
	period := c.Query("period")
	if period == "" {
		h.BadRequest(c, "period query parameter is required")
		return
	}

	accruals, err := h.billingService.ListAccrualsByPeriod(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, accruals)
}

// ListInvoices returns invoices matching the filter, paginated
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	var filter billingapp.InvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.billingService.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetInvoice retrieves an invoice by its ID
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	invoice, err := h.billingService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// ListVATSettings returns all VAT rate entries, newest valid-from first
func (h *BillingHandler) ListVATSettings(c *gin.Context) {
	settings, err := h.billingService.ListVATSettings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// SetVATRate records a VAT rate valid from a date
func (h *BillingHandler) SetVATRate(c *gin.Context) {
	var req billingapp.SetVATRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	setting, err := h.billingService.SetVATRate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, setting)
}
