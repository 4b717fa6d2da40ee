package property

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates ACTIVE reservation", func(t *testing.T) {
		r, err := NewReservation(uuid.New(), now.AddDate(0, 0, 7), now, nil)
		require.NoError(t, err)
		assert.Equal(t, ReservationStatusActive, r.Status)
		assert.Len(t, r.GetDomainEvents(), 1)
	})

	t.Run("rejects empty premise", func(t *testing.T) {
		_, err := NewReservation(uuid.Nil, now.AddDate(0, 0, 7), now, nil)
		assert.Error(t, err)
	})

	t.Run("rejects deadline not in the future", func(t *testing.T) {
		_, err := NewReservation(uuid.New(), now, now, nil)
		assert.Error(t, err)
		_, err = NewReservation(uuid.New(), now.AddDate(0, 0, -1), now, nil)
		assert.Error(t, err)
	})
}

func TestReservationIsActiveAt(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	until := now.AddDate(0, 0, 7)

	r, err := NewReservation(uuid.New(), until, now, nil)
	require.NoError(t, err)

	assert.True(t, r.IsActiveAt(now))
	assert.True(t, r.IsActiveAt(until.Add(-time.Second)))
	assert.False(t, r.IsActiveAt(until))
	assert.False(t, r.IsActiveAt(until.AddDate(0, 0, 1)))
}

func TestReservationCancel(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("cancels an active reservation", func(t *testing.T) {
		r, err := NewReservation(uuid.New(), now.AddDate(0, 0, 7), now, nil)
		require.NoError(t, err)

		r.Cancel()
		assert.Equal(t, ReservationStatusCancelled, r.Status)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		r, err := NewReservation(uuid.New(), now.AddDate(0, 0, 7), now, nil)
		require.NoError(t, err)

		r.Cancel()
		version := r.GetVersion()
		r.Cancel()
		assert.Equal(t, version, r.GetVersion())
	})
}

func TestReservationExpire(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	until := now.AddDate(0, 0, 7)

	t.Run("expires once the deadline has passed", func(t *testing.T) {
		r, err := NewReservation(uuid.New(), until, now, nil)
		require.NoError(t, err)

		require.NoError(t, r.Expire(until))
		assert.Equal(t, ReservationStatusExpired, r.Status)
	})

	t.Run("rejects expiry before the deadline", func(t *testing.T) {
		r, err := NewReservation(uuid.New(), until, now, nil)
		require.NoError(t, err)

		assert.Error(t, r.Expire(now))
		assert.Equal(t, ReservationStatusActive, r.Status)
	})

	t.Run("rejects expiry of a cancelled reservation", func(t *testing.T) {
		r, err := NewReservation(uuid.New(), until, now, nil)
		require.NoError(t, err)

		r.Cancel()
		assert.Error(t, r.Expire(until))
	})
}
