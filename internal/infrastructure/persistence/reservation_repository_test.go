package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReservation(t *testing.T, repo *GormReservationRepository, premiseID uuid.UUID, until time.Time, status property.ReservationStatus) *property.Reservation {
	t.Helper()
	r, err := property.NewReservation(premiseID, until, until.Add(-72*time.Hour), nil)
	require.NoError(t, err)
	r.Status = status
	require.NoError(t, repo.Save(context.Background(), r))
	return r
}

func TestGormReservationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormReservationRepository(db)
	ctx := context.Background()

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	premiseID := uuid.New()

	holding := seedReservation(t, repo, premiseID, now.Add(24*time.Hour), property.ReservationStatusActive)
	seedReservation(t, repo, premiseID, now.Add(-time.Hour), property.ReservationStatusActive)
	seedReservation(t, repo, premiseID, now.Add(48*time.Hour), property.ReservationStatusCancelled)

	t.Run("only an unexpired ACTIVE hold keeps the premise", func(t *testing.T) {
		found, err := repo.FindActiveByPremise(ctx, premiseID, now, nil)
		require.NoError(t, err)
		assert.Equal(t, holding.ID, found.ID)
	})

	t.Run("excluding the holder leaves nothing", func(t *testing.T) {
		_, err := repo.FindActiveByPremise(ctx, premiseID, now, &holding.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("the sweep sees only lapsed ACTIVE holds", func(t *testing.T) {
		expiring, err := repo.FindExpiring(ctx, now)
		require.NoError(t, err)
		require.Len(t, expiring, 1)
		assert.True(t, expiring[0].Until.Before(now))
	})

	t.Run("premise cleanup drops every hold", func(t *testing.T) {
		require.NoError(t, repo.DeleteByPremise(ctx, premiseID))

		_, err := repo.FindActiveByPremise(ctx, premiseID, now, nil)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		reservations, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Empty(t, reservations)
	})
}
