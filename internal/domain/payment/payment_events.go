package payment

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AggregateTypePayment = "Payment"

	EventTypePaymentReceived = "PaymentReceived"
	EventTypePaymentApplied  = "PaymentApplied"
	EventTypePaymentRefunded = "PaymentRefunded"
)

// PaymentReceivedEvent is raised when a payment is recorded
type PaymentReceivedEvent struct {
	shared.BaseDomainEvent
	TenantID uuid.UUID       `json:"tenant_id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Source   Source          `json:"source"`
}

func NewPaymentReceivedEvent(p *Payment) *PaymentReceivedEvent {
	return &PaymentReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentReceived, AggregateTypePayment, p.ID),
		TenantID:        p.TenantID,
		Amount:          p.Amount,
		Date:            p.Date,
		Source:          p.Source,
	}
}

// PaymentAppliedEvent is raised when a payment is linked to an invoice
type PaymentAppliedEvent struct {
	shared.BaseDomainEvent
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func NewPaymentAppliedEvent(p *Payment, invoiceID uuid.UUID) *PaymentAppliedEvent {
	return &PaymentAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentApplied, AggregateTypePayment, p.ID),
		InvoiceID:       invoiceID,
		Amount:          p.Amount,
	}
}

// PaymentRefundedEvent is raised when a payment is refunded
type PaymentRefundedEvent struct {
	shared.BaseDomainEvent
	Amount decimal.Decimal `json:"amount"`
}

func NewPaymentRefundedEvent(p *Payment) *PaymentRefundedEvent {
	return &PaymentRefundedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRefunded, AggregateTypePayment, p.ID),
		Amount:          p.Amount,
	}
}
