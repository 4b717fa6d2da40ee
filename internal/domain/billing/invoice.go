package billing

import (
	"fmt"
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "DRAFT"
	InvoiceStatusSent          InvoiceStatus = "SENT"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusOverdue       InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPartiallyPaid,
		InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice is the billing document for one accrual. The number is sequential
// within the accrual's calendar month; the date is when the billing run
// generated it, not the period billed.
type Invoice struct {
	shared.BaseEntity
	AccrualID uuid.UUID
	Number    string
	Date      time.Time
	Status    InvoiceStatus
}

// NewInvoice creates a DRAFT invoice for an accrual
func NewInvoice(accrualID uuid.UUID, number string, date time.Time) (*Invoice, error) {
	if accrualID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCRUAL", "Accrual ID cannot be empty")
	}
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}

	return &Invoice{
		BaseEntity: shared.NewBaseEntity(),
		AccrualID:  accrualID,
		Number:     number,
		Date:       date,
		Status:     InvoiceStatusDraft,
	}, nil
}

// SetStatus replaces the derived payment status
func (i *Invoice) SetStatus(status InvoiceStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invoice status is not valid")
	}
	i.Status = status
	i.UpdatedAt = time.Now()
	return nil
}

// InvoiceNumber formats the sequential invoice number scoped by period month
func InvoiceNumber(period Period, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", period.Tag(), seq)
}
