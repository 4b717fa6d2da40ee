package billing

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Accrual is a computed rent obligation for one lease for one calendar month.
// Uniqueness on (lease, period start) is enforced by the storage layer; the
// aggregate is immutable once persisted by the billing run.
type Accrual struct {
	shared.BaseEntity
	LeaseID    uuid.UUID
	Period     Period
	BaseAmount decimal.Decimal
	VATAmount  decimal.Decimal
	Total      decimal.Decimal
}

// NewAccrual creates an accrual for a lease and period from a computed charge
func NewAccrual(leaseID uuid.UUID, period Period, charge Charge) (*Accrual, error) {
	if leaseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LEASE", "Lease ID cannot be empty")
	}
	if charge.Total.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Accrual total must be positive")
	}

	return &Accrual{
		BaseEntity: shared.NewBaseEntity(),
		LeaseID:    leaseID,
		Period:     period,
		BaseAmount: charge.BaseAmount,
		VATAmount:  charge.VATAmount,
		Total:      charge.Total,
	}, nil
}

// DueDate computes when the accrued rent falls due: the lease's due day
// within the accrual period month.
func (a *Accrual) DueDate(dueDay int) time.Time {
	return time.Date(a.Period.Year, a.Period.Month, dueDay, 0, 0, 0, 0, time.UTC)
}
