package billing

import (
	"context"
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccrualRepository defines the interface for accrual persistence
type AccrualRepository interface {
	// FindByID finds an accrual by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Accrual, error)

	// FindByLeaseAndPeriod finds the accrual for a (lease, period) pair
	FindByLeaseAndPeriod(ctx context.Context, leaseID uuid.UUID, period Period) (*Accrual, error)

	// FindByLease finds all accruals of a lease, newest period first
	FindByLease(ctx context.Context, leaseID uuid.UUID) ([]Accrual, error)

	// FindByPeriod finds all accruals for a billing period
	FindByPeriod(ctx context.Context, period Period) ([]Accrual, error)

	// Save persists an accrual. A uniqueness violation on
	// (lease, period start) surfaces as shared.ErrAlreadyExists.
	Save(ctx context.Context, accrual *Accrual) error
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice by its human-readable number
	FindByNumber(ctx context.Context, number string) (*Invoice, error)

	// FindByAccrual finds the invoice belonging to an accrual
	FindByAccrual(ctx context.Context, accrualID uuid.UUID) (*Invoice, error)

	// FindAll finds invoices matching the filter (status, search, paging)
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// FindDatedWithin finds invoices dated inside [from, to]; the arrears
	// walk uses it to ignore invoices issued after the as-of date
	FindDatedWithin(ctx context.Context, from, to time.Time) ([]Invoice, error)

	// FindByLease finds invoices of a lease through its accruals
	FindByLease(ctx context.Context, leaseID uuid.UUID) ([]Invoice, error)

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error
}

// VATSettingRepository defines the interface for VAT setting persistence
type VATSettingRepository interface {
	// FindAll returns all VAT settings, newest valid-from first
	FindAll(ctx context.Context) ([]VATSetting, error)

	// FindForDate finds the settings effective on or before the given date
	FindForDate(ctx context.Context, date time.Time) ([]VATSetting, error)

	// FindByRateAndDate finds an exact (rate, validFrom) entry
	FindByRateAndDate(ctx context.Context, rate decimal.Decimal, validFrom time.Time) (*VATSetting, error)

	// Save creates or updates a VAT setting
	Save(ctx context.Context, setting *VATSetting) error
}
