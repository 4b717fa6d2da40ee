package payment

import (
	"time"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the reconciliation state of a payment
type Status string

const (
	StatusPending    Status = "PENDING"    // no invoice number supplied yet
	StatusApplied    Status = "APPLIED"    // linked to an invoice of the same tenant
	StatusUnresolved Status = "UNRESOLVED" // invoice number unknown or tenant mismatch
	StatusRefunded   Status = "REFUNDED"   // returned to the payer
)

// IsValid checks if the status is a valid payment Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApplied, StatusUnresolved, StatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Source tells how the payment entered the system
type Source string

const (
	SourceManual Source = "MANUAL"
	SourceImport Source = "IMPORT"
)

// IsValid checks if the source is valid
func (s Source) IsValid() bool {
	return s == SourceManual || s == SourceImport
}

// Payment is an incoming payment from a tenant. It may reference at most one
// invoice; the reference is set only when the stated invoice number resolves
// to an invoice of the same tenant.
type Payment struct {
	shared.BaseAggregateRoot
	TenantID        uuid.UUID
	Amount          decimal.Decimal
	Date            time.Time
	LinkedInvoiceID *uuid.UUID
	Status          Status
	Source          Source
}

// NewPayment creates a payment in PENDING status
func NewPayment(tenantID uuid.UUID, amount decimal.Decimal, date time.Time, source Source) (*Payment, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if source == "" {
		source = SourceManual
	}
	if !source.IsValid() {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Payment source is not valid")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          tenantID,
		Amount:            amount,
		Date:              date,
		Status:            StatusPending,
		Source:            source,
	}, nil
}

// LinkInvoice attaches the payment to an invoice and marks it APPLIED.
// The caller has already verified the invoice belongs to the same tenant.
func (p *Payment) LinkInvoice(invoiceID uuid.UUID) error {
	if p.Status == StatusRefunded {
		return shared.NewDomainError("INVALID_STATE", "A refunded payment cannot be applied")
	}
	if invoiceID == uuid.Nil {
		return shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}
	p.LinkedInvoiceID = &invoiceID
	p.Status = StatusApplied
	p.touch()
	return nil
}

// MarkUnresolved records that the stated invoice number could not be matched
// to an invoice of this tenant.
func (p *Payment) MarkUnresolved() error {
	if p.Status == StatusRefunded {
		return shared.NewDomainError("INVALID_STATE", "A refunded payment cannot change state")
	}
	p.LinkedInvoiceID = nil
	p.Status = StatusUnresolved
	p.touch()
	return nil
}

// Refund marks the payment REFUNDED. Refunded amounts no longer contribute
// to any invoice's paid total.
func (p *Payment) Refund() error {
	if p.Status == StatusRefunded {
		return shared.NewDomainError("INVALID_STATE", "Payment is already refunded")
	}
	p.Status = StatusRefunded
	p.touch()
	return nil
}

// CountsTowardPaid reports whether the payment contributes to the paid total
// of its linked invoice.
func (p *Payment) CountsTowardPaid() bool {
	return p.LinkedInvoiceID != nil && p.Status != StatusRefunded
}

func (p *Payment) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// PaidTotal sums the payments that count toward an invoice's paid amount
func PaidTotal(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for i := range payments {
		if payments[i].CountsTowardPaid() {
			total = total.Add(payments[i].Amount)
		}
	}
	return total
}

// DeriveInvoiceStatus derives an invoice's payment status from its accrual
// total and the non-refunded payments linked to it. Status never drifts:
// it is always recomputed from source data.
func DeriveInvoiceStatus(accrualTotal decimal.Decimal, payments []Payment) billing.InvoiceStatus {
	paid := PaidTotal(payments)
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return billing.InvoiceStatusDraft
	case paid.LessThan(accrualTotal):
		return billing.InvoiceStatusPartiallyPaid
	default:
		return billing.InvoiceStatusPaid
	}
}
