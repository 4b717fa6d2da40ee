package leasing

import (
	"context"
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LeaseRepository defines the interface for lease persistence
type LeaseRepository interface {
	// FindByID finds a lease by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Lease, error)

	// FindAll finds all leases matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Lease, error)

	// FindOccupying finds ACTIVE/TERMINATING leases for a premise, excluding
	// excludeID when non-nil. Used for the overlap check; implementations must
	// honor the caller's transaction so check and write stay atomic.
	FindOccupying(ctx context.Context, premiseID uuid.UUID, excludeID *uuid.UUID) ([]Lease, error)

	// FindActiveInPeriod finds ACTIVE leases whose period overlaps
	// [periodStart, periodEnd] - the billing eligibility query
	FindActiveInPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]Lease, error)

	// CountActivatedInYear counts leases whose contract date falls within the
	// given calendar year; feeds the LEASE-<year>-<seq> numbering
	CountActivatedInYear(ctx context.Context, year int) (int64, error)

	// CountByPremise counts leases referencing a premise (any status)
	CountByPremise(ctx context.Context, premiseID uuid.UUID) (int64, error)

	// CountByTenant counts leases referencing a tenant (any status)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)

	// Save creates or updates a lease
	Save(ctx context.Context, lease *Lease) error

	// Delete removes a lease
	Delete(ctx context.Context, id uuid.UUID) error
}

// IndexationRepository defines the interface for indexation persistence
type IndexationRepository interface {
	// FindByID finds an indexation by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Indexation, error)

	// FindByLease finds all indexations of a lease, newest effective first
	FindByLease(ctx context.Context, leaseID uuid.UUID) ([]Indexation, error)

	// ExistsForDate reports whether the lease already has an indexation with
	// the given effective date
	ExistsForDate(ctx context.Context, leaseID uuid.UUID, effectiveFrom time.Time) (bool, error)

	// Save creates or updates an indexation
	Save(ctx context.Context, ix *Indexation) error

	// Delete removes an indexation
	Delete(ctx context.Context, id uuid.UUID) error
}
