package leasing

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// rateScale is the precision the effective rate is rounded to before any
// amount computation.
const rateScale = 4

// Indexation is a rate-adjustment multiplier applied to a lease from a given
// effective date onward. At most one indexation per lease per effective date.
type Indexation struct {
	shared.BaseEntity
	LeaseID       uuid.UUID
	Factor        decimal.Decimal
	EffectiveFrom time.Time
}

// NewIndexation creates an indexation entry for a lease
func NewIndexation(leaseID uuid.UUID, factor decimal.Decimal, effectiveFrom time.Time) (*Indexation, error) {
	if leaseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LEASE", "Lease ID cannot be empty")
	}
	if factor.IsNegative() {
		return nil, shared.NewDomainError("INVALID_FACTOR", "Indexation factor cannot be negative")
	}
	if effectiveFrom.IsZero() {
		return nil, shared.NewDomainError("INVALID_EFFECTIVE_FROM", "Effective date is required")
	}

	return &Indexation{
		BaseEntity:    shared.NewBaseEntity(),
		LeaseID:       leaseID,
		Factor:        factor,
		EffectiveFrom: effectiveFrom,
	}, nil
}

// ResolveFactor selects, among the given indexations, the one with the latest
// effective date on or before periodStart, defaulting to 1 when none applies.
func ResolveFactor(indexations []Indexation, periodStart time.Time) decimal.Decimal {
	factor := decimal.NewFromInt(1)
	var best *time.Time
	for i := range indexations {
		ix := &indexations[i]
		if ix.EffectiveFrom.After(periodStart) {
			continue
		}
		if best == nil || ix.EffectiveFrom.After(*best) {
			t := ix.EffectiveFrom
			best = &t
			factor = ix.Factor
		}
	}
	return factor
}

// EffectiveRate computes the indexed base rate for a billing period:
// premise base rate times the applicable factor, rounded to four fractional
// digits before any amount computation.
func EffectiveRate(baseRate decimal.Decimal, indexations []Indexation, periodStart time.Time) decimal.Decimal {
	return baseRate.Mul(ResolveFactor(indexations, periodStart)).Round(rateScale)
}
