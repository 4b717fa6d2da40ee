package arrears

import (
	"context"

	"github.com/arenda/backend/internal/domain/arrears"
	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/payment"
)

// TransactionScope provides transactional access to the repositories the
// arrears computations read. A penalty run replaces same-window figures
// atomically.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories scoped to the current
// transaction
type TransactionalRepositories interface {
	PenaltyRepo() arrears.PenaltyRepository
	InvoiceRepo() billing.InvoiceRepository
	AccrualRepo() billing.AccrualRepository
	LeaseRepo() leasing.LeaseRepository
	PaymentRepo() payment.Repository
}

// NoOpTransactionScope runs the function without a real transaction
type NoOpTransactionScope struct {
	penaltyRepo arrears.PenaltyRepository
	invoiceRepo billing.InvoiceRepository
	accrualRepo billing.AccrualRepository
	leaseRepo   leasing.LeaseRepository
	paymentRepo payment.Repository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	penaltyRepo arrears.PenaltyRepository,
	invoiceRepo billing.InvoiceRepository,
	accrualRepo billing.AccrualRepository,
	leaseRepo leasing.LeaseRepository,
	paymentRepo payment.Repository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		penaltyRepo: penaltyRepo,
		invoiceRepo: invoiceRepo,
		accrualRepo: accrualRepo,
		leaseRepo:   leaseRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute runs the function directly, without transaction boundaries
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PenaltyRepo returns the penalty repository
func (s *NoOpTransactionScope) PenaltyRepo() arrears.PenaltyRepository {
	return s.penaltyRepo
}

// InvoiceRepo returns the invoice repository
func (s *NoOpTransactionScope) InvoiceRepo() billing.InvoiceRepository {
	return s.invoiceRepo
}

// AccrualRepo returns the accrual repository
func (s *NoOpTransactionScope) AccrualRepo() billing.AccrualRepository {
	return s.accrualRepo
}

// LeaseRepo returns the lease repository
func (s *NoOpTransactionScope) LeaseRepo() leasing.LeaseRepository {
	return s.leaseRepo
}

// PaymentRepo returns the payment repository
func (s *NoOpTransactionScope) PaymentRepo() payment.Repository {
	return s.paymentRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
