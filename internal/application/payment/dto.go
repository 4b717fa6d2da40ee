package payment

import (
	"time"

	"github.com/arenda/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	LinkedInvoiceID *uuid.UUID      `json:"linked_invoice_id,omitempty"`
	Status          payment.Status  `json:"status"`
	Source          payment.Source  `json:"source"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToPaymentResponse maps a payment aggregate to its response form
func ToPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		TenantID:        p.TenantID,
		Amount:          p.Amount,
		Date:            p.Date,
		LinkedInvoiceID: p.LinkedInvoiceID,
		Status:          p.Status,
		Source:          p.Source,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// CreatePaymentRequest represents an incoming payment record. The invoice
// number is optional; without one the payment stays PENDING until applied.
type CreatePaymentRequest struct {
	TenantID      uuid.UUID       `json:"tenant_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	InvoiceNumber string          `json:"invoice_number"`
	Source        string          `json:"source" binding:"omitempty,oneof=MANUAL IMPORT"`
}

// ApplyPaymentRequest represents a request to link a payment to an invoice
type ApplyPaymentRequest struct {
	InvoiceNumber string `json:"invoice_number" binding:"required"`
}

// PaymentListFilter represents filter options for the payment list
type PaymentListFilter struct {
	TenantID *uuid.UUID `form:"tenant_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=PENDING APPLIED UNRESOLVED REFUNDED"`
	Source   string     `form:"source" binding:"omitempty,oneof=MANUAL IMPORT"`
	DateFrom *time.Time `form:"date_from"`
	DateTo   *time.Time `form:"date_to"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ImportPaymentRow is one row of a bank statement import
type ImportPaymentRow struct {
	TenantUNP     string          `json:"tenant_unp" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	InvoiceNumber string          `json:"invoice_number"`
}

// ImportPaymentsRequest represents a bank statement import
type ImportPaymentsRequest struct {
	Rows []ImportPaymentRow `json:"rows" binding:"required,min=1,dive"`
}

// ImportRowResult reports the outcome for one imported row
type ImportRowResult struct {
	TenantUNP string         `json:"tenant_unp"`
	PaymentID *uuid.UUID     `json:"payment_id,omitempty"`
	Status    payment.Status `json:"status,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// ImportPaymentsResponse summarizes a bank statement import run
type ImportPaymentsResponse struct {
	Imported int               `json:"imported"`
	Failed   int               `json:"failed"`
	Results  []ImportRowResult `json:"results"`
}
