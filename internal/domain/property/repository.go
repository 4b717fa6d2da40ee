package property

import (
	"context"
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PremiseRepository defines the interface for premise persistence
type PremiseRepository interface {
	// FindByID finds a premise by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Premise, error)

	// FindByCode finds a premise by its human-readable code
	FindByCode(ctx context.Context, code string) (*Premise, error)

	// FindAll finds all premises matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Premise, error)

	// FindAvailable finds FREE premises available at the given instant
	FindAvailable(ctx context.Context, at time.Time) ([]Premise, error)

	// Save creates or updates a premise
	Save(ctx context.Context, premise *Premise) error

	// Delete removes a premise
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts premises matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ReservationRepository defines the interface for reservation persistence
type ReservationRepository interface {
	// FindByID finds a reservation by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Reservation, error)

	// FindAll finds all reservations matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Reservation, error)

	// FindActiveByPremise finds the ACTIVE reservation holding a premise at
	// the given instant, excluding excludeID when non-nil
	FindActiveByPremise(ctx context.Context, premiseID uuid.UUID, at time.Time, excludeID *uuid.UUID) (*Reservation, error)

	// FindExpiring finds ACTIVE reservations whose deadline is at or before now
	FindExpiring(ctx context.Context, now time.Time) ([]Reservation, error)

	// DeleteByPremise removes all reservations for a premise
	DeleteByPremise(ctx context.Context, premiseID uuid.UUID) error

	// Save creates or updates a reservation
	Save(ctx context.Context, reservation *Reservation) error
}
