package billing

import (
	"fmt"
	"regexp"
	"time"

	"github.com/arenda/backend/internal/domain/shared"
)

var periodPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Period is one calendar billing month
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a strict "YYYY-MM" period string
func ParsePeriod(s string) (Period, error) {
	m := periodPattern.FindStringSubmatch(s)
	if m == nil {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Period %q is not in YYYY-MM format", s))
	}
	var year, month int
	fmt.Sscanf(m[1], "%d", &year)
	fmt.Sscanf(m[2], "%d", &month)
	if month < 1 || month > 12 {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Period %q has an invalid month", s))
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// PeriodOf returns the billing period containing the given instant
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Start returns the first instant of the period month
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last instant of the period month
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Tag returns the compact YYYYMM form used in invoice numbers
func (p Period) Tag() string {
	return fmt.Sprintf("%04d%02d", p.Year, int(p.Month))
}

// String returns the canonical YYYY-MM form
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
