package property

import (
	"context"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
)

// TransactionScope provides transactional access to the repositories the
// reservation flows touch. All repository operations inside Execute share
// one database transaction and commit or roll back atomically.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories scoped to the current
// transaction. Reservation creation re-checks the single-active-hold and
// no-occupying-lease invariants inside the same transaction that flips the
// premise status.
type TransactionalRepositories interface {
	PremiseRepo() property.PremiseRepository
	ReservationRepo() property.ReservationRepository
	LeaseRepo() leasing.LeaseRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in tests and anywhere transactionality is not required.
type NoOpTransactionScope struct {
	premiseRepo     property.PremiseRepository
	reservationRepo property.ReservationRepository
	leaseRepo       leasing.LeaseRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	premiseRepo property.PremiseRepository,
	reservationRepo property.ReservationRepository,
	leaseRepo leasing.LeaseRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		premiseRepo:     premiseRepo,
		reservationRepo: reservationRepo,
		leaseRepo:       leaseRepo,
	}
}

// Execute runs the function directly, without transaction boundaries
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PremiseRepo returns the premise repository
func (s *NoOpTransactionScope) PremiseRepo() property.PremiseRepository {
	return s.premiseRepo
}

// ReservationRepo returns the reservation repository
func (s *NoOpTransactionScope) ReservationRepo() property.ReservationRepository {
	return s.reservationRepo
}

// LeaseRepo returns the lease repository
func (s *NoOpTransactionScope) LeaseRepo() leasing.LeaseRepository {
	return s.leaseRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
