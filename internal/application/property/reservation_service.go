package property

import (
	"context"
	"errors"
	"time"

	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReservationService handles premise holds: creation, cancellation and the
// expiry sweep. The status of a premise follows its reservations and leases;
// every transition here runs inside one transaction with the invariant
// re-checks.
type ReservationService struct {
	txScope        TransactionScope
	clock          shared.Clock
	eventPublisher shared.EventPublisher
}

// NewReservationService creates a new ReservationService
func NewReservationService(txScope TransactionScope, clock shared.Clock) *ReservationService {
	return &ReservationService{
		txScope: txScope,
		clock:   clock,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ReservationService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *ReservationService) publishDomainEvents(ctx context.Context, roots ...shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	for _, root := range roots {
		events := root.GetDomainEvents()
		if len(events) == 0 {
			continue
		}
		_ = s.eventPublisher.Publish(ctx, events...)
		root.ClearDomainEvents()
	}
}

// Create places a hold on a premise until the given deadline. The premise
// must exist, carry no other active hold and no occupying lease.
func (s *ReservationService) Create(ctx context.Context, req CreateReservationRequest) (*ReservationResponse, error) {
	now := s.clock.Now()

	var reservation *property.Reservation
	var premise *property.Premise
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		premise, err = repos.PremiseRepo().FindByID(ctx, req.PremiseID)
		if err != nil {
			return err
		}

		active, err := repos.ReservationRepo().FindActiveByPremise(ctx, req.PremiseID, now, nil)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if active != nil {
			return shared.NewDomainError("PREMISE_RESERVED", "Premise already has an active reservation")
		}

		occupying, err := repos.LeaseRepo().FindOccupying(ctx, req.PremiseID, nil)
		if err != nil {
			return err
		}
		if len(occupying) > 0 {
			return shared.NewDomainError("PREMISE_RENTED", "Premise is occupied by a lease")
		}

		reservation, err = property.NewReservation(req.PremiseID, req.Until, now, req.CreatedBy)
		if err != nil {
			return err
		}
		if err := repos.ReservationRepo().Save(ctx, reservation); err != nil {
			return err
		}

		if premise.Status == property.PremiseStatusFree {
			if err := premise.MarkReserved(); err != nil {
				return err
			}
			if err := repos.PremiseRepo().Save(ctx, premise); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, reservation, premise)

	resp := ToReservationResponse(reservation)
	return &resp, nil
}

// GetByID retrieves a reservation by ID
func (s *ReservationService) GetByID(ctx context.Context, id uuid.UUID) (*ReservationResponse, error) {
	var reservation *property.Reservation
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		reservation, err = repos.ReservationRepo().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToReservationResponse(reservation)
	return &resp, nil
}

// List retrieves reservations matching the filter
func (s *ReservationService) List(ctx context.Context, filter ReservationListFilter) ([]ReservationResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.PremiseID != nil {
		domainFilter.Filters["premise_id"] = *filter.PremiseID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	var reservations []property.Reservation
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		reservations, err = repos.ReservationRepo().FindAll(ctx, domainFilter)
		return err
	})
	if err != nil {
		return nil, err
	}

	items := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		items = append(items, ToReservationResponse(&reservations[i]))
	}
	return items, nil
}

// Cancel releases a hold. The premise returns to FREE only when no other
// active hold and no occupying lease remain.
func (s *ReservationService) Cancel(ctx context.Context, id uuid.UUID) (*ReservationResponse, error) {
	now := s.clock.Now()

	var reservation *property.Reservation
	var premise *property.Premise
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		reservation, err = repos.ReservationRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		reservation.Cancel()
		if err := repos.ReservationRepo().Save(ctx, reservation); err != nil {
			return err
		}

		premise, err = s.releasePremiseIfUnheld(ctx, repos, reservation.PremiseID, reservation.ID, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	roots := []shared.AggregateRoot{reservation}
	if premise != nil {
		roots = append(roots, premise)
	}
	s.publishDomainEvents(ctx, roots...)

	resp := ToReservationResponse(reservation)
	return &resp, nil
}

// ExpireNow sweeps reservations whose deadline has passed, marking them
// EXPIRED and freeing premises left unheld.
func (s *ReservationService) ExpireNow(ctx context.Context) (*ExpireReservationsResponse, error) {
	now := s.clock.Now()
	resp := &ExpireReservationsResponse{Freed: make([]uuid.UUID, 0)}

	var expired []*property.Reservation
	var freed []*property.Premise
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		reservations, err := repos.ReservationRepo().FindExpiring(ctx, now)
		if err != nil {
			return err
		}
		for i := range reservations {
			r := &reservations[i]
			if err := r.Expire(now); err != nil {
				return err
			}
			if err := repos.ReservationRepo().Save(ctx, r); err != nil {
				return err
			}
			resp.Expired++
			expired = append(expired, r)

			premise, err := s.releasePremiseIfUnheld(ctx, repos, r.PremiseID, r.ID, now)
			if err != nil {
				return err
			}
			if premise != nil {
				resp.Freed = append(resp.Freed, premise.ID)
				freed = append(freed, premise)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, r := range expired {
		s.publishDomainEvents(ctx, r)
	}
	for _, p := range freed {
		s.publishDomainEvents(ctx, p)
	}
	return resp, nil
}

// releasePremiseIfUnheld frees a RESERVED premise when neither another
// active reservation nor an occupying lease holds it. Returns the premise
// when its status changed.
func (s *ReservationService) releasePremiseIfUnheld(
	ctx context.Context,
	repos TransactionalRepositories,
	premiseID, excludeReservationID uuid.UUID,
	now time.Time,
) (*property.Premise, error) {
	premise, err := repos.PremiseRepo().FindByID(ctx, premiseID)
	if err != nil {
		return nil, err
	}
	if premise.Status != property.PremiseStatusReserved {
		return nil, nil
	}

	other, err := repos.ReservationRepo().FindActiveByPremise(ctx, premiseID, now, &excludeReservationID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if other != nil {
		return nil, nil
	}

	occupying, err := repos.LeaseRepo().FindOccupying(ctx, premiseID, nil)
	if err != nil {
		return nil, err
	}
	if len(occupying) > 0 {
		return nil, nil
	}

	premise.MarkFree(now)
	if err := repos.PremiseRepo().Save(ctx, premise); err != nil {
		return nil, err
	}
	return premise, nil
}
