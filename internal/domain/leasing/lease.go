package leasing

import (
	"fmt"
	"time"

	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaseStatus represents the lifecycle state of a lease contract
type LeaseStatus string

const (
	LeaseStatusDraft       LeaseStatus = "DRAFT"
	LeaseStatusActive      LeaseStatus = "ACTIVE"
	LeaseStatusTerminating LeaseStatus = "TERMINATING"
	LeaseStatusClosed      LeaseStatus = "CLOSED"
)

// IsValid checks if the status is a valid LeaseStatus
func (s LeaseStatus) IsValid() bool {
	switch s {
	case LeaseStatusDraft, LeaseStatusActive, LeaseStatusTerminating, LeaseStatusClosed:
		return true
	}
	return false
}

// String returns the string representation of LeaseStatus
func (s LeaseStatus) String() string {
	return string(s)
}

// Occupies reports whether a lease in this status counts against the
// one-lease-per-premise invariant.
func (s LeaseStatus) Occupies() bool {
	return s == LeaseStatusActive || s == LeaseStatusTerminating
}

// IsEditable reports whether contract terms may still change
func (s LeaseStatus) IsEditable() bool {
	return s == LeaseStatusDraft || s == LeaseStatusTerminating
}

// openEndSentinel stands in for the missing end of an open-ended period
var openEndSentinel = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// PeriodsOverlap reports whether [aFrom, aTo] and [bFrom, bTo] intersect.
// A nil end date means the period is open-ended.
func PeriodsOverlap(aFrom time.Time, aTo *time.Time, bFrom time.Time, bTo *time.Time) bool {
	aEnd := openEndSentinel
	if aTo != nil {
		aEnd = *aTo
	}
	bEnd := openEndSentinel
	if bTo != nil {
		bEnd = *bTo
	}
	return !aFrom.After(bEnd) && !bFrom.After(aEnd)
}

// Lease represents a lease contract aggregate root
type Lease struct {
	shared.BaseAggregateRoot
	Number            string // assigned on activation, e.g. LEASE-2025-0001
	Date              *time.Time
	PremiseID         uuid.UUID
	TenantID          uuid.UUID
	PeriodFrom        time.Time
	PeriodTo          *time.Time // nil = open-ended
	RateBase          property.RateType
	Currency          string
	VATRate           *decimal.Decimal // nil = resolve from VAT settings
	DueDay            int              // 1..28, day of month rent falls due
	PenaltyRatePerDay decimal.Decimal  // percent per day on overdue balance
	Deposit           *decimal.Decimal
	Status            LeaseStatus
	ReservationID     *uuid.UUID
	CreatedBy         *uuid.UUID
}

// LeaseTerms carries the contract parameters for creation and edits
type LeaseTerms struct {
	PremiseID         uuid.UUID
	TenantID          uuid.UUID
	PeriodFrom        time.Time
	PeriodTo          *time.Time
	RateBase          property.RateType
	Currency          string
	VATRate           *decimal.Decimal
	DueDay            int
	PenaltyRatePerDay decimal.Decimal
	Deposit           *decimal.Decimal
}

func (t LeaseTerms) validate() error {
	if t.PremiseID == uuid.Nil {
		return shared.NewDomainError("INVALID_PREMISE", "Premise ID cannot be empty")
	}
	if t.TenantID == uuid.Nil {
		return shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if !t.RateBase.IsValid() {
		return shared.NewDomainError("INVALID_RATE_BASE", "Rate base is not valid")
	}
	if t.PeriodTo != nil && t.PeriodTo.Before(t.PeriodFrom) {
		return shared.NewDomainError("INVALID_PERIOD", "Period end cannot be earlier than period start")
	}
	if t.DueDay < 1 || t.DueDay > 28 {
		return shared.NewDomainError("INVALID_DUE_DAY", "Due day must be between 1 and 28")
	}
	if t.PenaltyRatePerDay.IsNegative() {
		return shared.NewDomainError("INVALID_PENALTY_RATE", "Penalty rate cannot be negative")
	}
	if t.Deposit != nil && t.Deposit.IsNegative() {
		return shared.NewDomainError("INVALID_DEPOSIT", "Deposit cannot be negative")
	}
	return nil
}

// NewLease creates a lease in DRAFT status. The contract number is assigned
// later, on activation.
func NewLease(terms LeaseTerms, reservationID, createdBy *uuid.UUID) (*Lease, error) {
	if err := terms.validate(); err != nil {
		return nil, err
	}
	currency := terms.Currency
	if currency == "" {
		currency = "BYN"
	}

	l := &Lease{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PremiseID:         terms.PremiseID,
		TenantID:          terms.TenantID,
		PeriodFrom:        terms.PeriodFrom,
		PeriodTo:          terms.PeriodTo,
		RateBase:          terms.RateBase,
		Currency:          currency,
		VATRate:           terms.VATRate,
		DueDay:            terms.DueDay,
		PenaltyRatePerDay: terms.PenaltyRatePerDay,
		Deposit:           terms.Deposit,
		Status:            LeaseStatusDraft,
		ReservationID:     reservationID,
		CreatedBy:         createdBy,
	}

	l.AddDomainEvent(NewLeaseCreatedEvent(l))

	return l, nil
}

// OverlapsWith reports whether this lease's period intersects another period
func (l *Lease) OverlapsWith(from time.Time, to *time.Time) bool {
	return PeriodsOverlap(l.PeriodFrom, l.PeriodTo, from, to)
}

// ApplyTerms replaces the contract terms. Allowed only while DRAFT or
// TERMINATING; the caller re-runs the overlap check when premise or period
// changed.
func (l *Lease) ApplyTerms(terms LeaseTerms) error {
	if !l.Status.IsEditable() {
		return shared.NewDomainError("INVALID_STATE", "Only DRAFT or TERMINATING leases can be updated")
	}
	if err := terms.validate(); err != nil {
		return err
	}
	l.PremiseID = terms.PremiseID
	l.TenantID = terms.TenantID
	l.PeriodFrom = terms.PeriodFrom
	l.PeriodTo = terms.PeriodTo
	l.RateBase = terms.RateBase
	if terms.Currency != "" {
		l.Currency = terms.Currency
	}
	l.VATRate = terms.VATRate
	l.DueDay = terms.DueDay
	l.PenaltyRatePerDay = terms.PenaltyRatePerDay
	l.Deposit = terms.Deposit
	l.touch()
	l.AddDomainEvent(NewLeaseUpdatedEvent(l))
	return nil
}

// Activate transitions DRAFT -> ACTIVE, stamping the contract number and
// activation date when not already assigned. The sequence number is scoped
// by the activation calendar year.
func (l *Lease) Activate(number string, activatedAt time.Time) error {
	if l.Status != LeaseStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only a DRAFT lease can be activated")
	}
	if l.Number == "" {
		if number == "" {
			return shared.NewDomainError("INVALID_NUMBER", "Contract number is required for activation")
		}
		l.Number = number
		l.Date = &activatedAt
	}
	l.Status = LeaseStatusActive
	l.touch()
	l.AddDomainEvent(NewLeaseActivatedEvent(l))
	return nil
}

// Terminate transitions ACTIVE -> TERMINATING. Terminating an already
// terminating lease is a no-op.
func (l *Lease) Terminate() error {
	if l.Status == LeaseStatusTerminating {
		return nil
	}
	if l.Status != LeaseStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only an ACTIVE lease can be set to TERMINATING")
	}
	l.Status = LeaseStatusTerminating
	l.touch()
	l.AddDomainEvent(NewLeaseTerminatingEvent(l))
	return nil
}

// Close transitions ACTIVE or TERMINATING -> CLOSED
func (l *Lease) Close() error {
	if !l.Status.Occupies() {
		return shared.NewDomainError("INVALID_STATE", "Only an ACTIVE or TERMINATING lease can be closed")
	}
	l.Status = LeaseStatusClosed
	l.touch()
	l.AddDomainEvent(NewLeaseClosedEvent(l))
	return nil
}

// CanDelete reports whether the lease may be removed
func (l *Lease) CanDelete() bool {
	return l.Status == LeaseStatusDraft
}

// ContractNumber formats the sequential contract number for an activation year
func ContractNumber(year int, seq int64) string {
	return fmt.Sprintf("LEASE-%d-%04d", year, seq)
}

func (l *Lease) touch() {
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}
