package property

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants for the property context
const (
	AggregateTypePremise     = "Premise"
	AggregateTypeReservation = "Reservation"
)

// Event type constants for the property context
const (
	EventTypePremiseCreated       = "PremiseCreated"
	EventTypePremiseStatusChanged = "PremiseStatusChanged"
	EventTypeReservationCreated   = "ReservationCreated"
	EventTypeReservationCancelled = "ReservationCancelled"
	EventTypeReservationExpired   = "ReservationExpired"
)

// PremiseCreatedEvent is published when a new premise is registered
type PremiseCreatedEvent struct {
	shared.BaseDomainEvent
	PremiseID uuid.UUID   `json:"premise_id"`
	Code      string      `json:"code"`
	Type      PremiseType `json:"type"`
	Address   string      `json:"address"`
}

// NewPremiseCreatedEvent creates a new PremiseCreatedEvent
func NewPremiseCreatedEvent(premise *Premise) *PremiseCreatedEvent {
	return &PremiseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePremiseCreated, AggregateTypePremise, premise.ID),
		PremiseID:       premise.ID,
		Code:            premise.Code,
		Type:            premise.Type,
		Address:         premise.Address,
	}
}

// PremiseStatusChangedEvent is published when a premise changes occupancy status
type PremiseStatusChangedEvent struct {
	shared.BaseDomainEvent
	PremiseID uuid.UUID     `json:"premise_id"`
	Status    PremiseStatus `json:"status"`
}

// NewPremiseStatusChangedEvent creates a new PremiseStatusChangedEvent
func NewPremiseStatusChangedEvent(premise *Premise) *PremiseStatusChangedEvent {
	return &PremiseStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePremiseStatusChanged, AggregateTypePremise, premise.ID),
		PremiseID:       premise.ID,
		Status:          premise.Status,
	}
}

// ReservationCreatedEvent is published when a premise is put on hold
type ReservationCreatedEvent struct {
	shared.BaseDomainEvent
	ReservationID uuid.UUID `json:"reservation_id"`
	PremiseID     uuid.UUID `json:"premise_id"`
	Until         time.Time `json:"until"`
}

// NewReservationCreatedEvent creates a new ReservationCreatedEvent
func NewReservationCreatedEvent(r *Reservation) *ReservationCreatedEvent {
	return &ReservationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReservationCreated, AggregateTypeReservation, r.ID),
		ReservationID:   r.ID,
		PremiseID:       r.PremiseID,
		Until:           r.Until,
	}
}

// ReservationCancelledEvent is published when a reservation is cancelled
type ReservationCancelledEvent struct {
	shared.BaseDomainEvent
	ReservationID uuid.UUID `json:"reservation_id"`
	PremiseID     uuid.UUID `json:"premise_id"`
}

// NewReservationCancelledEvent creates a new ReservationCancelledEvent
func NewReservationCancelledEvent(r *Reservation) *ReservationCancelledEvent {
	return &ReservationCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReservationCancelled, AggregateTypeReservation, r.ID),
		ReservationID:   r.ID,
		PremiseID:       r.PremiseID,
	}
}

// ReservationExpiredEvent is published when a reservation passes its hold deadline
type ReservationExpiredEvent struct {
	shared.BaseDomainEvent
	ReservationID uuid.UUID `json:"reservation_id"`
	PremiseID     uuid.UUID `json:"premise_id"`
}

// NewReservationExpiredEvent creates a new ReservationExpiredEvent
func NewReservationExpiredEvent(r *Reservation) *ReservationExpiredEvent {
	return &ReservationExpiredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReservationExpired, AggregateTypeReservation, r.ID),
		ReservationID:   r.ID,
		PremiseID:       r.PremiseID,
	}
}
