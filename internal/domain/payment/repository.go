package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows payment listings
type Filter struct {
	TenantID *uuid.UUID
	Status   *Status
	Source   *Source
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// Repository defines the persistence port for payments
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindAll(ctx context.Context, filter Filter) ([]Payment, error)
	// FindByInvoice returns every payment linked to the invoice,
	// refunded ones included.
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)
	// FindByLease returns payments linked to any invoice of the lease,
	// newest first.
	FindByLease(ctx context.Context, leaseID uuid.UUID) ([]Payment, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Save(ctx context.Context, p *Payment) error
}
