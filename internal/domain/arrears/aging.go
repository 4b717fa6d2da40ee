package arrears

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AgingBuckets splits a tenant's outstanding debt by days overdue
type AgingBuckets struct {
	Current    decimal.Decimal `json:"current"`
	Days1To30  decimal.Decimal `json:"days_1_30"`
	Days31To60 decimal.Decimal `json:"days_31_60"`
	Days61To90 decimal.Decimal `json:"days_61_90"`
	Over90     decimal.Decimal `json:"over_90"`
	Total      decimal.Decimal `json:"total"`
}

// NewAgingBuckets returns zeroed buckets
func NewAgingBuckets() AgingBuckets {
	return AgingBuckets{
		Current:    decimal.Zero,
		Days1To30:  decimal.Zero,
		Days31To60: decimal.Zero,
		Days61To90: decimal.Zero,
		Over90:     decimal.Zero,
		Total:      decimal.Zero,
	}
}

// Add places an outstanding amount into the bucket matching its days overdue
func (b *AgingBuckets) Add(amount decimal.Decimal, daysOverdue int) {
	switch {
	case daysOverdue <= 0:
		b.Current = b.Current.Add(amount)
	case daysOverdue <= 30:
		b.Days1To30 = b.Days1To30.Add(amount)
	case daysOverdue <= 60:
		b.Days31To60 = b.Days31To60.Add(amount)
	case daysOverdue <= 90:
		b.Days61To90 = b.Days61To90.Add(amount)
	default:
		b.Over90 = b.Over90.Add(amount)
	}
	b.Total = b.Total.Add(amount)
}

// TenantAging is one row of an aging report
type TenantAging struct {
	TenantID uuid.UUID    `json:"tenant_id"`
	Buckets  AgingBuckets `json:"buckets"`
}

// DaysBetween counts whole days from one date to another, ignoring the
// time-of-day component of both.
func DaysBetween(from, to time.Time) int {
	f := truncateToDay(from)
	t := truncateToDay(to)
	return int(t.Sub(f).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
