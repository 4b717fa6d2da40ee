package billing

import (
	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// amountScale is the precision of stored monetary amounts
const amountScale = 2

// DefaultVATRatePercent applies when neither the lease nor the VAT settings
// carry a rate for the billing period.
var DefaultVATRatePercent = decimal.NewFromInt(20)

// Charge is the computed rent obligation for one lease for one period
type Charge struct {
	BaseAmount decimal.Decimal
	VATAmount  decimal.Decimal
	Total      decimal.Decimal
}

// ComputeCharge derives the rent charge from the effective rate.
//
// The unrounded base (area x rate for per-area leases, the rate itself for
// fixed ones) feeds all three figures independently: stored base and VAT are
// each rounded from it, and the total is rounded from base x (1 + vat/100).
// Rounding the total from the unrounded base keeps the figures on the paper
// contract forms (total may differ from base + VAT by one cent).
func ComputeCharge(rateBase property.RateType, area, effectiveRate, vatRatePercent decimal.Decimal) (Charge, error) {
	if effectiveRate.IsZero() {
		return Charge{}, shared.NewDomainError("MISSING_RATE", "missing base rate or area")
	}

	var base decimal.Decimal
	switch rateBase {
	case property.RateTypePerArea:
		if area.IsZero() {
			return Charge{}, shared.NewDomainError("MISSING_RATE", "missing base rate or area")
		}
		base = area.Mul(effectiveRate)
	case property.RateTypeFixed:
		base = effectiveRate
	default:
		return Charge{}, shared.NewDomainError("INVALID_RATE_BASE", "Rate base is not valid")
	}

	hundred := decimal.NewFromInt(100)
	return Charge{
		BaseAmount: base.Round(amountScale),
		VATAmount:  base.Mul(vatRatePercent).Div(hundred).Round(amountScale),
		Total:      base.Mul(hundred.Add(vatRatePercent)).Div(hundred).Round(amountScale),
	}, nil
}
