package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/arenda/backend/internal/domain/arrears"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPenalty(t *testing.T, repo *GormPenaltyRepository, leaseID uuid.UUID, from, to time.Time, amount string) *arrears.Penalty {
	t.Helper()
	days := int(to.Sub(from).Hours()/24) + 1
	p, err := arrears.NewPenalty(leaseID, from, to,
		decimal.RequireFromString("1200.00"), decimal.RequireFromString("0.1"), days, decimal.RequireFromString(amount))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestGormPenaltyRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPenaltyRepository(db)
	ctx := context.Background()

	leaseID := uuid.New()
	from := time.Date(2025, time.April, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC)

	first := seedPenalty(t, repo, leaseID, from, to, "18.00")
	seedPenalty(t, repo, uuid.New(), from, to, "9.00")

	t.Run("filters by lease and window", func(t *testing.T) {
		penalties, err := repo.FindAll(ctx, arrears.PenaltyFilter{LeaseID: &leaseID})
		require.NoError(t, err)
		require.Len(t, penalties, 1)
		assert.Equal(t, first.ID, penalties[0].ID)

		may := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
		penalties, err = repo.FindAll(ctx, arrears.PenaltyFilter{From: &may})
		require.NoError(t, err)
		assert.Empty(t, penalties)

		count, err := repo.Count(ctx, arrears.PenaltyFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("a rerun replaces the figure for the same window", func(t *testing.T) {
		require.NoError(t, repo.DeleteByWindow(ctx, leaseID, from, to))

		replacement := seedPenalty(t, repo, leaseID, from, to, "21.00")

		penalties, err := repo.FindAll(ctx, arrears.PenaltyFilter{LeaseID: &leaseID})
		require.NoError(t, err)
		require.Len(t, penalties, 1)
		assert.Equal(t, replacement.ID, penalties[0].ID)
		assert.True(t, penalties[0].Amount.Equal(decimal.RequireFromString("21.00")))
	})

	t.Run("deleting a missing window is harmless", func(t *testing.T) {
		assert.NoError(t, repo.DeleteByWindow(ctx, uuid.New(), from, to))
	})
}
