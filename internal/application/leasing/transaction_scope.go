package leasing

import (
	"context"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
)

// TransactionScope provides transactional access to the repositories the
// lease lifecycle touches. Activation re-runs the overlap check inside the
// same transaction that assigns the contract number and flips the premise
// status, so two concurrent activations cannot both pass.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories scoped to the current
// transaction
type TransactionalRepositories interface {
	LeaseRepo() leasing.LeaseRepository
	IndexationRepo() leasing.IndexationRepository
	PremiseRepo() property.PremiseRepository
	ReservationRepo() property.ReservationRepository
}

// NoOpTransactionScope runs the function without a real transaction
type NoOpTransactionScope struct {
	leaseRepo       leasing.LeaseRepository
	indexationRepo  leasing.IndexationRepository
	premiseRepo     property.PremiseRepository
	reservationRepo property.ReservationRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	leaseRepo leasing.LeaseRepository,
	indexationRepo leasing.IndexationRepository,
	premiseRepo property.PremiseRepository,
	reservationRepo property.ReservationRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		leaseRepo:       leaseRepo,
		indexationRepo:  indexationRepo,
		premiseRepo:     premiseRepo,
		reservationRepo: reservationRepo,
	}
}

// Execute runs the function directly, without transaction boundaries
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// LeaseRepo returns the lease repository
func (s *NoOpTransactionScope) LeaseRepo() leasing.LeaseRepository {
	return s.leaseRepo
}

// IndexationRepo returns the indexation repository
func (s *NoOpTransactionScope) IndexationRepo() leasing.IndexationRepository {
	return s.indexationRepo
}

// PremiseRepo returns the premise repository
func (s *NoOpTransactionScope) PremiseRepo() property.PremiseRepository {
	return s.premiseRepo
}

// ReservationRepo returns the reservation repository
func (s *NoOpTransactionScope) ReservationRepo() property.ReservationRepository {
	return s.reservationRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
