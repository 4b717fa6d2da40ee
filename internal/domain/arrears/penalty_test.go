package arrears

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	t.Run("counts whole days ignoring time of day", func(t *testing.T) {
		from := time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.April, 20, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, 36, DaysBetween(from, to))
	})

	t.Run("same day is zero", func(t *testing.T) {
		day := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, DaysBetween(day, day.Add(20*time.Hour)))
	})

	t.Run("reversed dates are negative", func(t *testing.T) {
		from := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, -5, DaysBetween(from, to))
	})
}

func TestWindowFor(t *testing.T) {
	dueDate := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("window runs from the day after the due date through asOf", func(t *testing.T) {
		asOf := time.Date(2025, time.March, 25, 15, 0, 0, 0, time.UTC)
		w, ok := WindowFor(dueDate, asOf)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), w.From)
		assert.Equal(t, time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC), w.To)
		assert.Equal(t, 15, w.Days)
	})

	t.Run("no window on or before the due date", func(t *testing.T) {
		_, ok := WindowFor(dueDate, dueDate)
		assert.False(t, ok)
		_, ok = WindowFor(dueDate, dueDate.AddDate(0, 0, -3))
		assert.False(t, ok)
	})

	t.Run("one day overdue", func(t *testing.T) {
		w, ok := WindowFor(dueDate, dueDate.AddDate(0, 0, 1))
		require.True(t, ok)
		assert.Equal(t, 1, w.Days)
		assert.Equal(t, w.From, w.To)
	})
}

func TestPenaltyAmount(t *testing.T) {
	t.Run("outstanding times daily rate times days", func(t *testing.T) {
		// 1200.00 * 0.1% * 15 days = 18.00
		amount := PenaltyAmount(decimal.RequireFromString("1200.00"), decimal.RequireFromString("0.1"), 15)
		assert.Equal(t, "18.00", amount.StringFixed(2))
	})

	t.Run("rounds to cents", func(t *testing.T) {
		// 333.33 * 0.15% * 7 = 34.999...
		amount := PenaltyAmount(decimal.RequireFromString("333.33"), decimal.RequireFromString("0.15"), 7)
		assert.Equal(t, "3.50", amount.StringFixed(2))
	})

	t.Run("zero rate yields zero", func(t *testing.T) {
		amount := PenaltyAmount(decimal.NewFromInt(1000), decimal.Zero, 30)
		assert.True(t, amount.IsZero())
	})
}

func TestNewPenalty(t *testing.T) {
	from := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC)
	base := decimal.RequireFromString("1200.00")
	rate := decimal.RequireFromString("0.1")

	t.Run("creates penalty", func(t *testing.T) {
		p, err := NewPenalty(uuid.New(), from, to, base, rate, 15, decimal.RequireFromString("18.00"))
		require.NoError(t, err)
		assert.Equal(t, 15, p.Days)
		assert.Equal(t, "18.00", p.Amount.StringFixed(2))
	})

	t.Run("rejects empty lease", func(t *testing.T) {
		_, err := NewPenalty(uuid.Nil, from, to, base, rate, 15, decimal.NewFromInt(18))
		assert.Error(t, err)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		_, err := NewPenalty(uuid.New(), to, from, base, rate, 15, decimal.NewFromInt(18))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPenalty(uuid.New(), from, to, base, rate, 15, decimal.Zero)
		assert.Error(t, err)
	})
}
