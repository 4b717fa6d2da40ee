package billing

import (
	"context"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
)

// TransactionScope provides transactional access to the repositories a
// billing run touches. Each lease is billed in its own transaction so one
// failing lease never rolls back the others.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories scoped to the current
// transaction
type TransactionalRepositories interface {
	AccrualRepo() billing.AccrualRepository
	InvoiceRepo() billing.InvoiceRepository
	VATSettingRepo() billing.VATSettingRepository
	LeaseRepo() leasing.LeaseRepository
	IndexationRepo() leasing.IndexationRepository
	PremiseRepo() property.PremiseRepository
}

// NoOpTransactionScope runs the function without a real transaction
type NoOpTransactionScope struct {
	accrualRepo    billing.AccrualRepository
	invoiceRepo    billing.InvoiceRepository
	vatSettingRepo billing.VATSettingRepository
	leaseRepo      leasing.LeaseRepository
	indexationRepo leasing.IndexationRepository
	premiseRepo    property.PremiseRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	accrualRepo billing.AccrualRepository,
	invoiceRepo billing.InvoiceRepository,
	vatSettingRepo billing.VATSettingRepository,
	leaseRepo leasing.LeaseRepository,
	indexationRepo leasing.IndexationRepository,
	premiseRepo property.PremiseRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		accrualRepo:    accrualRepo,
		invoiceRepo:    invoiceRepo,
		vatSettingRepo: vatSettingRepo,
		leaseRepo:      leaseRepo,
		indexationRepo: indexationRepo,
		premiseRepo:    premiseRepo,
	}
}

// Execute runs the function directly, without transaction boundaries
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// AccrualRepo returns the accrual repository
func (s *NoOpTransactionScope) AccrualRepo() billing.AccrualRepository {
	return s.accrualRepo
}

// InvoiceRepo returns the invoice repository
func (s *NoOpTransactionScope) InvoiceRepo() billing.InvoiceRepository {
	return s.invoiceRepo
}

// VATSettingRepo returns the VAT setting repository
func (s *NoOpTransactionScope) VATSettingRepo() billing.VATSettingRepository {
	return s.vatSettingRepo
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

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
