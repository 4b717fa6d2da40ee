package property

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PremiseStatus represents the occupancy status of a premise.
// It is derived from reservations and leases, never set arbitrarily.
type PremiseStatus string

const (
	PremiseStatusFree     PremiseStatus = "FREE"
	PremiseStatusReserved PremiseStatus = "RESERVED"
	PremiseStatusRented   PremiseStatus = "RENTED"
)

// IsValid checks if the status is a valid PremiseStatus
func (s PremiseStatus) IsValid() bool {
	switch s {
	case PremiseStatusFree, PremiseStatusReserved, PremiseStatusRented:
		return true
	}
	return false
}

// String returns the string representation of PremiseStatus
func (s PremiseStatus) String() string {
	return string(s)
}

// PremiseType classifies a rentable premise
type PremiseType string

const (
	PremiseTypeOffice    PremiseType = "OFFICE"
	PremiseTypeRetail    PremiseType = "RETAIL"
	PremiseTypeWarehouse PremiseType = "WAREHOUSE"
	PremiseTypeOther     PremiseType = "OTHER"
)

// IsValid checks if the premise type is valid
func (t PremiseType) IsValid() bool {
	switch t {
	case PremiseTypeOffice, PremiseTypeRetail, PremiseTypeWarehouse, PremiseTypeOther:
		return true
	}
	return false
}

// RateType determines how rent is computed for a premise or lease
type RateType string

const (
	RateTypePerArea RateType = "M2"    // rate is per square meter
	RateTypeFixed   RateType = "FIXED" // rate is a flat monthly amount
)

// IsValid checks if the rate type is valid
func (t RateType) IsValid() bool {
	return t == RateTypePerArea || t == RateTypeFixed
}

// Premise represents a rentable commercial premise aggregate root
type Premise struct {
	shared.BaseAggregateRoot
	Code          string
	Type          PremiseType
	Address       string
	Floor         *int
	Area          decimal.Decimal
	RateType      RateType
	BaseRate      decimal.Decimal
	Status        PremiseStatus
	AvailableFrom *time.Time
}

// NewPremise creates a new premise in FREE status
func NewPremise(
	code string,
	premiseType PremiseType,
	address string,
	floor *int,
	area decimal.Decimal,
	rateType RateType,
	baseRate decimal.Decimal,
	availableFrom *time.Time,
) (*Premise, error) {
	if !premiseType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PREMISE_TYPE", "Premise type is not valid")
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}
	if area.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AREA", "Area must be positive")
	}
	if !rateType.IsValid() {
		return nil, shared.NewDomainError("INVALID_RATE_TYPE", "Rate type is not valid")
	}
	if baseRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_BASE_RATE", "Base rate cannot be negative")
	}

	p := &Premise{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Type:              premiseType,
		Address:           address,
		Floor:             floor,
		Area:              area,
		RateType:          rateType,
		BaseRate:          baseRate,
		Status:            PremiseStatusFree,
		AvailableFrom:     availableFrom,
	}

	p.AddDomainEvent(NewPremiseCreatedEvent(p))

	return p, nil
}

// MarkReserved transitions the premise to RESERVED.
// Only a FREE premise can be reserved.
func (p *Premise) MarkReserved() error {
	if p.Status != PremiseStatusFree {
		return shared.ErrPremiseNotFree
	}
	p.Status = PremiseStatusReserved
	p.touch()
	p.AddDomainEvent(NewPremiseStatusChangedEvent(p))
	return nil
}

// MarkRented transitions the premise to RENTED (a lease was activated).
// A RESERVED premise may become RENTED when its reservation converts to a lease.
func (p *Premise) MarkRented() error {
	if p.Status == PremiseStatusRented {
		return shared.NewDomainError("INVALID_STATE", "Premise is already rented")
	}
	p.Status = PremiseStatusRented
	p.touch()
	p.AddDomainEvent(NewPremiseStatusChangedEvent(p))
	return nil
}

// MarkFree transitions the premise back to FREE and stamps availability
func (p *Premise) MarkFree(availableFrom time.Time) {
	p.Status = PremiseStatusFree
	p.AvailableFrom = &availableFrom
	p.touch()
	p.AddDomainEvent(NewPremiseStatusChangedEvent(p))
}

// IsAvailableAt reports whether a FREE premise is open for new reservations
// or leases at the given instant.
func (p *Premise) IsAvailableAt(at time.Time) bool {
	if p.Status != PremiseStatusFree {
		return false
	}
	return p.AvailableFrom == nil || !p.AvailableFrom.After(at)
}

func (p *Premise) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
