package property

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReservationStatus represents the status of a premise hold
type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusExpired   ReservationStatus = "EXPIRED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// IsValid checks if the status is a valid ReservationStatus
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusActive, ReservationStatusExpired, ReservationStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of ReservationStatus
func (s ReservationStatus) String() string {
	return string(s)
}

// Reservation is a time-boxed hold on a premise prior to lease creation.
// A premise may carry at most one ACTIVE reservation whose Until is in the
// future; that invariant is re-checked transactionally by the application layer.
type Reservation struct {
	shared.BaseAggregateRoot
	PremiseID uuid.UUID
	Until     time.Time // inclusive hold deadline
	Status    ReservationStatus
	CreatedBy *uuid.UUID
}

// NewReservation creates an ACTIVE reservation for a premise
func NewReservation(premiseID uuid.UUID, until time.Time, now time.Time, createdBy *uuid.UUID) (*Reservation, error) {
	if premiseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PREMISE", "Premise ID cannot be empty")
	}
	if !until.After(now) {
		return nil, shared.NewDomainError("INVALID_UNTIL", "Reservation until must be in the future")
	}

	r := &Reservation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PremiseID:         premiseID,
		Until:             until,
		Status:            ReservationStatusActive,
		CreatedBy:         createdBy,
	}

	r.AddDomainEvent(NewReservationCreatedEvent(r))

	return r, nil
}

// IsActiveAt reports whether the reservation still holds the premise at the
// given instant. The deadline day itself is included.
func (r *Reservation) IsActiveAt(at time.Time) bool {
	return r.Status == ReservationStatusActive && r.Until.After(at)
}

// Cancel marks the reservation CANCELLED. Cancelling a non-active
// reservation is a no-op.
func (r *Reservation) Cancel() {
	if r.Status != ReservationStatusActive {
		return
	}
	r.Status = ReservationStatusCancelled
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	r.AddDomainEvent(NewReservationCancelledEvent(r))
}

// Expire marks an ACTIVE reservation whose deadline has passed as EXPIRED
func (r *Reservation) Expire(now time.Time) error {
	if r.Status != ReservationStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only an active reservation can expire")
	}
	if r.Until.After(now) {
		return shared.NewDomainError("INVALID_STATE", "Reservation deadline has not passed yet")
	}
	r.Status = ReservationStatusExpired
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	r.AddDomainEvent(NewReservationExpiredEvent(r))
	return nil
}
