package payment

import (
	"context"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/payment"
)

// TransactionScope provides transactional access to the repositories the
// reconciliation flows touch. Linking a payment and recomputing the invoice
// status happen inside one transaction.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories scoped to the current
// transaction. The lease and accrual repositories resolve invoice ownership:
// invoice -> accrual -> lease -> tenant.
type TransactionalRepositories interface {
	PaymentRepo() payment.Repository
	InvoiceRepo() billing.InvoiceRepository
	AccrualRepo() billing.AccrualRepository
	LeaseRepo() leasing.LeaseRepository
}

// NoOpTransactionScope runs the function without a real transaction
type NoOpTransactionScope struct {
	paymentRepo payment.Repository
	invoiceRepo billing.InvoiceRepository
	accrualRepo billing.AccrualRepository
	leaseRepo   leasing.LeaseRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	paymentRepo payment.Repository,
	invoiceRepo billing.InvoiceRepository,
	accrualRepo billing.AccrualRepository,
	leaseRepo leasing.LeaseRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		accrualRepo: accrualRepo,
		leaseRepo:   leaseRepo,
	}
}

// Execute runs the function directly, without transaction boundaries
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PaymentRepo returns the payment repository
func (s *NoOpTransactionScope) PaymentRepo() payment.Repository {
	return s.paymentRepo
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

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
