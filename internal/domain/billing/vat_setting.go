package billing

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// VATSetting is a system-wide VAT rate valid from a given date onward.
// Leases without their own VAT rate resolve against these.
type VATSetting struct {
	shared.BaseEntity
	Rate      decimal.Decimal
	ValidFrom time.Time
}

// NewVATSetting creates a VAT rate entry
func NewVATSetting(rate decimal.Decimal, validFrom time.Time) (*VATSetting, error) {
	if rate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VAT_RATE", "VAT rate cannot be negative")
	}
	if validFrom.IsZero() {
		return nil, shared.NewDomainError("INVALID_VALID_FROM", "Valid-from date is required")
	}
	return &VATSetting{
		BaseEntity: shared.NewBaseEntity(),
		Rate:       rate,
		ValidFrom:  validFrom,
	}, nil
}

// ResolveVATRate picks the VAT rate with the latest valid-from date on or
// before the billing period start, falling back to the system default.
func ResolveVATRate(settings []VATSetting, periodStart time.Time) decimal.Decimal {
	rate := DefaultVATRatePercent
	var best *time.Time
	for i := range settings {
		s := &settings[i]
		if s.ValidFrom.After(periodStart) {
			continue
		}
		if best == nil || s.ValidFrom.After(*best) {
			t := s.ValidFrom
			best = &t
			rate = s.Rate
		}
	}
	return rate
}
