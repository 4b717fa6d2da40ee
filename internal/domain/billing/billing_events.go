package billing

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for Invoice
const AggregateTypeInvoice = "Invoice"

// Event type constants for billing
const (
	EventTypeInvoiceIssued = "InvoiceIssued"
)

// InvoiceIssuedEvent is published when a billing run issues an invoice.
// Subscribers use it to notify the tenant.
type InvoiceIssuedEvent struct {
	shared.BaseDomainEvent
	InvoiceID uuid.UUID       `json:"invoice_id"`
	LeaseID   uuid.UUID       `json:"lease_id"`
	Number    string          `json:"number"`
	Period    string          `json:"period"`
	Total     decimal.Decimal `json:"total"`
	Date      time.Time       `json:"date"`
}

// NewInvoiceIssuedEvent creates a new InvoiceIssuedEvent
func NewInvoiceIssuedEvent(invoice *Invoice, accrual *Accrual) *InvoiceIssuedEvent {
	return &InvoiceIssuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceIssued, AggregateTypeInvoice, invoice.ID),
		InvoiceID:       invoice.ID,
		LeaseID:         accrual.LeaseID,
		Number:          invoice.Number,
		Period:          accrual.Period.String(),
		Total:           accrual.Total,
		Date:            invoice.Date,
	}
}
