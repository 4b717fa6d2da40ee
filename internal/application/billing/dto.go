package billing

import (
	"time"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Per-lease outcome codes of a billing run
const (
	RunResultCreated = "CREATED"
	RunResultSkipped = "SKIPPED"
	RunResultFailed  = "FAILED"
)

// RunRequest represents a request to generate accruals and invoices
type RunRequest struct {
	Period string `json:"period" binding:"required,billingperiod"`
}

// RunLeaseResult reports the outcome of one lease within a billing run
type RunLeaseResult struct {
	LeaseID       uuid.UUID        `json:"lease_id"`
	Status        string           `json:"status"`
	AccrualID     *uuid.UUID       `json:"accrual_id,omitempty"`
	InvoiceID     *uuid.UUID       `json:"invoice_id,omitempty"`
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	Total         *decimal.Decimal `json:"total,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// RunResponse summarizes a billing run. Reruns for the same period skip
// leases already billed, so the run is idempotent.
type RunResponse struct {
	Period    string           `json:"period"`
	Processed int              `json:"processed"`
	Created   int              `json:"created"`
	Skipped   int              `json:"skipped"`
	Failed    int              `json:"failed"`
	Results   []RunLeaseResult `json:"results"`
}

// AccrualResponse represents an accrual in API responses
type AccrualResponse struct {
	ID         uuid.UUID       `json:"id"`
	LeaseID    uuid.UUID       `json:"lease_id"`
	Period     string          `json:"period"`
	BaseAmount decimal.Decimal `json:"base_amount"`
	VATAmount  decimal.Decimal `json:"vat_amount"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToAccrualResponse maps an accrual to its response form
func ToAccrualResponse(a *billing.Accrual) AccrualResponse {
	return AccrualResponse{
		ID:         a.ID,
		LeaseID:    a.LeaseID,
		Period:     a.Period.String(),
		BaseAmount: a.BaseAmount,
		VATAmount:  a.VATAmount,
		Total:      a.Total,
		CreatedAt:  a.CreatedAt,
	}
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID        uuid.UUID             `json:"id"`
	AccrualID uuid.UUID             `json:"accrual_id"`
	Number    string                `json:"number"`
	Date      time.Time             `json:"date"`
	Status    billing.InvoiceStatus `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
}

// ToInvoiceResponse maps an invoice to its response form
func ToInvoiceResponse(i *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        i.ID,
		AccrualID: i.AccrualID,
		Number:    i.Number,
		Date:      i.Date,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
	}
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	Search   string     `form:"search"`
	Status   string     `form:"status" binding:"omitempty,oneof=DRAFT SENT PARTIALLY_PAID PAID OVERDUE CANCELLED"`
	DateFrom *time.Time `form:"date_from"`
	DateTo   *time.Time `form:"date_to"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// VATSettingResponse represents a VAT rate entry in API responses
type VATSettingResponse struct {
	ID        uuid.UUID       `json:"id"`
	Rate      decimal.Decimal `json:"rate"`
	ValidFrom time.Time       `json:"valid_from"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToVATSettingResponse maps a VAT setting to its response form
func ToVATSettingResponse(v *billing.VATSetting) VATSettingResponse {
	return VATSettingResponse{
		ID:        v.ID,
		Rate:      v.Rate,
		ValidFrom: v.ValidFrom,
		CreatedAt: v.CreatedAt,
	}
}

// SetVATRateRequest represents a request to record a VAT rate valid from a date
type SetVATRateRequest struct {
	Rate      decimal.Decimal `json:"rate" binding:"required"`
	ValidFrom time.Time       `json:"valid_from" binding:"required"`
}
