package leasing

import (
	"context"
	"errors"
	"time"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/domain/tenant"
	"github.com/google/uuid"
)

// LeaseService handles the lease contract lifecycle: drafting, activation,
// termination, closing, and rate indexations.
type LeaseService struct {
	txScope        TransactionScope
	tenantRepo     tenant.Repository
	clock          shared.Clock
	eventPublisher shared.EventPublisher
}

// NewLeaseService creates a new LeaseService
func NewLeaseService(txScope TransactionScope, tenantRepo tenant.Repository, clock shared.Clock) *LeaseService {
	return &LeaseService{
		txScope:    txScope,
		tenantRepo: tenantRepo,
		clock:      clock,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *LeaseService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *LeaseService) publishDomainEvents(ctx context.Context, roots ...shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	for _, root := range roots {
		if root == nil {
			continue
		}
		events := root.GetDomainEvents()
		if len(events) == 0 {
			continue
		}
		_ = s.eventPublisher.Publish(ctx, events...)
		root.ClearDomainEvents()
	}
}

// Create drafts a lease contract. When the draft originates from a
// reservation, the reservation must still hold the same premise and the
// draft inherits its creator unless one is given explicitly.
func (s *LeaseService) Create(ctx context.Context, req CreateLeaseRequest) (*LeaseResponse, error) {
	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var lease *leasing.Lease
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.PremiseRepo().FindByID(ctx, req.PremiseID); err != nil {
			return err
		}

		createdBy := req.CreatedBy
		if req.ReservationID != nil {
			reservation, err := repos.ReservationRepo().FindByID(ctx, *req.ReservationID)
			if err != nil {
				return err
			}
			if reservation.PremiseID != req.PremiseID {
				return shared.NewDomainError("RESERVATION_MISMATCH", "Reservation holds a different premise")
			}
			if !reservation.IsActiveAt(now) {
				return shared.NewDomainError("RESERVATION_INACTIVE", "Reservation is no longer active")
			}
			if createdBy == nil {
				createdBy = reservation.CreatedBy
			}
		}

		if err := s.ensureNoOverlap(ctx, repos, req.PremiseID, req.PeriodFrom, req.PeriodTo, nil); err != nil {
			return err
		}

		var err error
		lease, err = leasing.NewLease(leasing.LeaseTerms{
			PremiseID:         req.PremiseID,
			TenantID:          req.TenantID,
			PeriodFrom:        req.PeriodFrom,
			PeriodTo:          req.PeriodTo,
			RateBase:          property.RateType(req.RateBase),
			Currency:          req.Currency,
			VATRate:           req.VATRate,
			DueDay:            req.DueDay,
			PenaltyRatePerDay: req.PenaltyRatePerDay,
			Deposit:           req.Deposit,
		}, req.ReservationID, createdBy)
		if err != nil {
			return err
		}
		return repos.LeaseRepo().Save(ctx, lease)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, lease)

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// GetByID retrieves a lease by ID
func (s *LeaseService) GetByID(ctx context.Context, id uuid.UUID) (*LeaseResponse, error) {
	var lease *leasing.Lease
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		lease, err = repos.LeaseRepo().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// List retrieves leases matching the filter
func (s *LeaseService) List(ctx context.Context, filter LeaseListFilter) ([]LeaseResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.PremiseID != nil {
		domainFilter.Filters["premise_id"] = *filter.PremiseID
	}
	if filter.TenantID != nil {
		domainFilter.Filters["tenant_id"] = *filter.TenantID
	}

	var leases []leasing.Lease
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		leases, err = repos.LeaseRepo().FindAll(ctx, domainFilter)
		return err
	})
	if err != nil {
		return nil, err
	}

	items := make([]LeaseResponse, 0, len(leases))
	for i := range leases {
		items = append(items, ToLeaseResponse(&leases[i]))
	}
	return items, nil
}

// Update replaces contract terms on an editable lease
func (s *LeaseService) Update(ctx context.Context, id uuid.UUID, req UpdateLeaseRequest) (*LeaseResponse, error) {
	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		return nil, err
	}

	var lease *leasing.Lease
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		lease, err = repos.LeaseRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err := repos.PremiseRepo().FindByID(ctx, req.PremiseID); err != nil {
			return err
		}
		if err := s.ensureNoOverlap(ctx, repos, req.PremiseID, req.PeriodFrom, req.PeriodTo, &id); err != nil {
			return err
		}
		if err := lease.ApplyTerms(leasing.LeaseTerms{
			PremiseID:         req.PremiseID,
			TenantID:          req.TenantID,
			PeriodFrom:        req.PeriodFrom,
			PeriodTo:          req.PeriodTo,
			RateBase:          property.RateType(req.RateBase),
			Currency:          req.Currency,
			VATRate:           req.VATRate,
			DueDay:            req.DueDay,
			PenaltyRatePerDay: req.PenaltyRatePerDay,
			Deposit:           req.Deposit,
		}); err != nil {
			return err
		}
		return repos.LeaseRepo().Save(ctx, lease)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, lease)

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// Activate transitions a draft to ACTIVE: the overlap check re-runs, the
// contract number is assigned from the per-year sequence, the premise turns
// RENTED and a linked reservation is consumed. All inside one transaction.
func (s *LeaseService) Activate(ctx context.Context, id uuid.UUID) (*LeaseResponse, error) {
	now := s.clock.Now()

	var lease *leasing.Lease
	var premise *property.Premise
	var reservation *property.Reservation
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		lease, err = repos.LeaseRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ensureNoOverlap(ctx, repos, lease.PremiseID, lease.PeriodFrom, lease.PeriodTo, &id); err != nil {
			return err
		}

		number := lease.Number
		if number == "" {
			seq, err := repos.LeaseRepo().CountActivatedInYear(ctx, now.Year())
			if err != nil {
				return err
			}
			number = leasing.ContractNumber(now.Year(), seq+1)
		}
		if err := lease.Activate(number, now); err != nil {
			return err
		}
		if err := repos.LeaseRepo().Save(ctx, lease); err != nil {
			return err
		}

		premise, err = repos.PremiseRepo().FindByID(ctx, lease.PremiseID)
		if err != nil {
			return err
		}
		if premise.Status != property.PremiseStatusRented {
			if err := premise.MarkRented(); err != nil {
				return err
			}
			if err := repos.PremiseRepo().Save(ctx, premise); err != nil {
				return err
			}
		}

		if lease.ReservationID != nil {
			reservation, err = repos.ReservationRepo().FindByID(ctx, *lease.ReservationID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return nil
				}
				return err
			}
			reservation.Cancel()
			return repos.ReservationRepo().Save(ctx, reservation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, lease, premise, reservation)

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// Terminate marks an ACTIVE lease TERMINATING. The lease keeps occupying
// its premise and keeps accruing rent until closed.
func (s *LeaseService) Terminate(ctx context.Context, id uuid.UUID) (*LeaseResponse, error) {
	var lease *leasing.Lease
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		lease, err = repos.LeaseRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := lease.Terminate(); err != nil {
			return err
		}
		return repos.LeaseRepo().Save(ctx, lease)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, lease)

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// Close finishes a lease and frees its premise, stamping availability with
// the closing instant
func (s *LeaseService) Close(ctx context.Context, id uuid.UUID) (*LeaseResponse, error) {
	now := s.clock.Now()

	var lease *leasing.Lease
	var premise *property.Premise
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		lease, err = repos.LeaseRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := lease.Close(); err != nil {
			return err
		}
		if err := repos.LeaseRepo().Save(ctx, lease); err != nil {
			return err
		}

		premise, err = repos.PremiseRepo().FindByID(ctx, lease.PremiseID)
		if err != nil {
			return err
		}
		premise.MarkFree(now)
		return repos.PremiseRepo().Save(ctx, premise)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, lease, premise)

	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// Delete removes a lease. Only drafts can be deleted; any other status has
// billing history behind it.
func (s *LeaseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		lease, err := repos.LeaseRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !lease.CanDelete() {
			return shared.NewDomainError("INVALID_STATE", "Only a DRAFT lease can be deleted")
		}
		return repos.LeaseRepo().Delete(ctx, id)
	})
}

// AddIndexation records a rate multiplier for a lease, effective from the
// given date. One entry per lease per effective date.
func (s *LeaseService) AddIndexation(ctx context.Context, leaseID uuid.UUID, req AddIndexationRequest) (*IndexationResponse, error) {
	var ix *leasing.Indexation
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		lease, err := repos.LeaseRepo().FindByID(ctx, leaseID)
		if err != nil {
			return err
		}
		exists, err := repos.IndexationRepo().ExistsForDate(ctx, leaseID, req.EffectiveFrom)
		if err != nil {
			return err
		}
		if exists {
			return shared.ErrAlreadyExists
		}
		ix, err = leasing.NewIndexation(lease.ID, req.Factor, req.EffectiveFrom)
		if err != nil {
			return err
		}
		return repos.IndexationRepo().Save(ctx, ix)
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, leasing.NewIndexationAppliedEvent(leaseID, ix))
	}

	resp := ToIndexationResponse(ix)
	return &resp, nil
}

// ListIndexations retrieves the indexations of a lease, newest effective first
func (s *LeaseService) ListIndexations(ctx context.Context, leaseID uuid.UUID) ([]IndexationResponse, error) {
	var indexations []leasing.Indexation
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.LeaseRepo().FindByID(ctx, leaseID); err != nil {
			return err
		}
		var err error
		indexations, err = repos.IndexationRepo().FindByLease(ctx, leaseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	items := make([]IndexationResponse, 0, len(indexations))
	for i := range indexations {
		items = append(items, ToIndexationResponse(&indexations[i]))
	}
	return items, nil
}

// RemoveIndexation deletes an indexation entry from a lease
func (s *LeaseService) RemoveIndexation(ctx context.Context, leaseID, indexationID uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		ix, err := repos.IndexationRepo().FindByID(ctx, indexationID)
		if err != nil {
			return err
		}
		if ix.LeaseID != leaseID {
			return shared.ErrNotFound
		}
		return repos.IndexationRepo().Delete(ctx, indexationID)
	})
}

// ensureNoOverlap refuses a period that intersects the period of any
// occupying lease on the same premise
func (s *LeaseService) ensureNoOverlap(
	ctx context.Context,
	repos TransactionalRepositories,
	premiseID uuid.UUID,
	periodFrom time.Time,
	periodTo *time.Time,
	excludeID *uuid.UUID,
) error {
	occupying, err := repos.LeaseRepo().FindOccupying(ctx, premiseID, excludeID)
	if err != nil {
		return err
	}
	for i := range occupying {
		if occupying[i].OverlapsWith(periodFrom, periodTo) {
			return shared.ErrPeriodOverlap
		}
	}
	return nil
}
