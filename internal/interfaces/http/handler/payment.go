package handler

import (
	paymentapp "github.com/arenda/backend/internal/application/payment"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment and reconciliation API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *paymentapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *paymentapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create records an incoming payment and reconciles it against an invoice
// when a number is supplied
func (h *PaymentHandler) Create(c *gin.Context) {
	var req paymentapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	p, err := h.paymentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, p)
}

// GetByID retrieves a payment by its ID
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	p, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// List returns payments matching the filter
func (h *PaymentHandler) List(c *gin.Context) {
	var filter paymentapp.PaymentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	payments, err := h.paymentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// Apply links a pending or unresolved payment to an invoice
func (h *PaymentHandler) Apply(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	var req paymentapp.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	p, err := h.paymentService.Apply(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// Refund marks a payment returned to the payer and rolls the linked invoice
// status back
func (h *PaymentHandler) Refund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	p, err := h.paymentService.Refund(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// Import records a bank statement, one payment per row
func (h *PaymentHandler) Import(c *gin.Context) {
	var req paymentapp.ImportPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.paymentService.Import(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
