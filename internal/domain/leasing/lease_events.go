package leasing

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for Lease
const AggregateTypeLease = "Lease"

// Event type constants for Lease
const (
	EventTypeLeaseCreated      = "LeaseCreated"
	EventTypeLeaseUpdated      = "LeaseUpdated"
	EventTypeLeaseActivated    = "LeaseActivated"
	EventTypeLeaseTerminating  = "LeaseTerminating"
	EventTypeLeaseClosed       = "LeaseClosed"
	EventTypeIndexationApplied = "IndexationApplied"
)

// LeaseCreatedEvent is published when a new draft lease is created
type LeaseCreatedEvent struct {
	shared.BaseDomainEvent
	LeaseID   uuid.UUID `json:"lease_id"`
	PremiseID uuid.UUID `json:"premise_id"`
	TenantID  uuid.UUID `json:"tenant_id"`
}

// NewLeaseCreatedEvent creates a new LeaseCreatedEvent
func NewLeaseCreatedEvent(l *Lease) *LeaseCreatedEvent {
	return &LeaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseCreated, AggregateTypeLease, l.ID),
		LeaseID:         l.ID,
		PremiseID:       l.PremiseID,
		TenantID:        l.TenantID,
	}
}

// LeaseUpdatedEvent is published when contract terms change
type LeaseUpdatedEvent struct {
	shared.BaseDomainEvent
	LeaseID uuid.UUID `json:"lease_id"`
}

// NewLeaseUpdatedEvent creates a new LeaseUpdatedEvent
func NewLeaseUpdatedEvent(l *Lease) *LeaseUpdatedEvent {
	return &LeaseUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseUpdated, AggregateTypeLease, l.ID),
		LeaseID:         l.ID,
	}
}

// LeaseActivatedEvent is published when a lease enters ACTIVE
type LeaseActivatedEvent struct {
	shared.BaseDomainEvent
	LeaseID   uuid.UUID `json:"lease_id"`
	Number    string    `json:"number"`
	PremiseID uuid.UUID `json:"premise_id"`
}

// NewLeaseActivatedEvent creates a new LeaseActivatedEvent
func NewLeaseActivatedEvent(l *Lease) *LeaseActivatedEvent {
	return &LeaseActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseActivated, AggregateTypeLease, l.ID),
		LeaseID:         l.ID,
		Number:          l.Number,
		PremiseID:       l.PremiseID,
	}
}

// LeaseTerminatingEvent is published when termination starts
type LeaseTerminatingEvent struct {
	shared.BaseDomainEvent
	LeaseID uuid.UUID `json:"lease_id"`
}

// NewLeaseTerminatingEvent creates a new LeaseTerminatingEvent
func NewLeaseTerminatingEvent(l *Lease) *LeaseTerminatingEvent {
	return &LeaseTerminatingEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseTerminating, AggregateTypeLease, l.ID),
		LeaseID:         l.ID,
	}
}

// LeaseClosedEvent is published when a lease is closed and the premise freed
type LeaseClosedEvent struct {
	shared.BaseDomainEvent
	LeaseID   uuid.UUID `json:"lease_id"`
	PremiseID uuid.UUID `json:"premise_id"`
}

// NewLeaseClosedEvent creates a new LeaseClosedEvent
func NewLeaseClosedEvent(l *Lease) *LeaseClosedEvent {
	return &LeaseClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseClosed, AggregateTypeLease, l.ID),
		LeaseID:         l.ID,
		PremiseID:       l.PremiseID,
	}
}

// IndexationAppliedEvent is published when a rate indexation is added
type IndexationAppliedEvent struct {
	shared.BaseDomainEvent
	LeaseID       uuid.UUID       `json:"lease_id"`
	Factor        decimal.Decimal `json:"factor"`
	EffectiveFrom time.Time       `json:"effective_from"`
}

// NewIndexationAppliedEvent creates a new IndexationAppliedEvent
func NewIndexationAppliedEvent(leaseID uuid.UUID, ix *Indexation) *IndexationAppliedEvent {
	return &IndexationAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeIndexationApplied, AggregateTypeLease, leaseID),
		LeaseID:         leaseID,
		Factor:          ix.Factor,
		EffectiveFrom:   ix.EffectiveFrom,
	}
}
