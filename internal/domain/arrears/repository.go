package arrears

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PenaltyFilter narrows penalty listings
type PenaltyFilter struct {
	LeaseID *uuid.UUID
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

// PenaltyRepository defines the persistence port for penalties
type PenaltyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Penalty, error)
	FindAll(ctx context.Context, filter PenaltyFilter) ([]Penalty, error)
	Count(ctx context.Context, filter PenaltyFilter) (int64, error)
	// DeleteByWindow removes any penalty already recorded for the same
	// lease and window so a rerun replaces it.
	DeleteByWindow(ctx context.Context, leaseID uuid.UUID, from, to time.Time) error
	Save(ctx context.Context, p *Penalty) error
}
