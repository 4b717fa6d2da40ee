package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVATRate(t *testing.T) {
	jan := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	settings := []VATSetting{
		{Rate: decimal.NewFromInt(18), ValidFrom: jan},
		{Rate: decimal.NewFromInt(22), ValidFrom: mar},
	}

	t.Run("picks latest setting on or before the period start", func(t *testing.T) {
		rate := ResolveVATRate(settings, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "18", rate.String())

		rate = ResolveVATRate(settings, mar)
		assert.Equal(t, "22", rate.String())

		rate = ResolveVATRate(settings, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "22", rate.String())
	})

	t.Run("falls back to the system default when nothing applies", func(t *testing.T) {
		rate := ResolveVATRate(settings, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
		assert.True(t, rate.Equal(DefaultVATRatePercent))

		rate = ResolveVATRate(nil, mar)
		assert.True(t, rate.Equal(DefaultVATRatePercent))
	})
}

func TestNewVATSetting(t *testing.T) {
	validFrom := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates setting", func(t *testing.T) {
		s, err := NewVATSetting(decimal.NewFromInt(20), validFrom)
		require.NoError(t, err)
		assert.Equal(t, "20", s.Rate.String())
		assert.Equal(t, validFrom, s.ValidFrom)
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		_, err := NewVATSetting(decimal.NewFromInt(-1), validFrom)
		assert.Error(t, err)
	})

	t.Run("rejects zero valid-from", func(t *testing.T) {
		_, err := NewVATSetting(decimal.NewFromInt(20), time.Time{})
		assert.Error(t, err)
	})
}
