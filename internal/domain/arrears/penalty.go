package arrears

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const amountScale = 2

// Penalty is a late-payment charge accrued over a window of overdue days.
// The window is identified by (lease, from, to); re-running the calculation
// for the same window replaces the previous figure.
type Penalty struct {
	shared.BaseAggregateRoot
	LeaseID    uuid.UUID
	PeriodFrom time.Time
	PeriodTo   time.Time
	Base       decimal.Decimal
	RatePerDay decimal.Decimal
	Days       int
	Amount     decimal.Decimal
}

// NewPenalty creates a penalty for a computed window
func NewPenalty(leaseID uuid.UUID, from, to time.Time, base, ratePerDay decimal.Decimal, days int, amount decimal.Decimal) (*Penalty, error) {
	if leaseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LEASE", "Lease ID cannot be empty")
	}
	if to.Before(from) {
		return nil, shared.NewDomainError("INVALID_WINDOW", "Penalty window end precedes its start")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Penalty amount must be positive")
	}

	return &Penalty{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		LeaseID:           leaseID,
		PeriodFrom:        from,
		PeriodTo:          to,
		Base:              base,
		RatePerDay:        ratePerDay,
		Days:              days,
		Amount:            amount,
	}, nil
}

// PenaltyWindow describes the overdue span a penalty covers
type PenaltyWindow struct {
	From time.Time
	To   time.Time
	Days int
}

// WindowFor computes the overdue window for a debt due on dueDate, observed
// at asOf. The window starts the day after the due date and the day count is
// inclusive of asOf. There is no window when asOf is on or before the due
// date.
func WindowFor(dueDate, asOf time.Time) (PenaltyWindow, bool) {
	days := DaysBetween(dueDate, asOf)
	if days <= 0 {
		return PenaltyWindow{}, false
	}
	return PenaltyWindow{
		From: truncateToDay(dueDate).AddDate(0, 0, 1),
		To:   truncateToDay(asOf),
		Days: days,
	}, true
}

// PenaltyAmount computes the charge for an outstanding amount over a window:
// outstanding times the daily percentage rate times the day count.
func PenaltyAmount(outstanding, ratePerDayPercent decimal.Decimal, days int) decimal.Decimal {
	return outstanding.
		Mul(ratePerDayPercent).
		Div(decimal.NewFromInt(100)).
		Mul(decimal.NewFromInt(int64(days))).
		Round(amountScale)
}
