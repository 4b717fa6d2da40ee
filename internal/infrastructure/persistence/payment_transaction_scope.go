package persistence

import (
	"context"

	apppayment "github.com/arenda/backend/internal/application/payment"
	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/payment"
	"gorm.io/gorm"
)

// GormPaymentTransactionScope implements the payment TransactionScope using
// GORM transactions. Linking a payment and rolling up the invoice status
// commit together.
type GormPaymentTransactionScope struct {
	db *gorm.DB
}

// NewGormPaymentTransactionScope creates a new GormPaymentTransactionScope
func NewGormPaymentTransactionScope(db *gorm.DB) *GormPaymentTransactionScope {
	return &GormPaymentTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormPaymentTransactionScope) Execute(ctx context.Context, fn func(repos apppayment.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPaymentTransactionalRepositories{tx: tx})
	})
}

type gormPaymentTransactionalRepositories struct {
	tx *gorm.DB
}

// PaymentRepo returns the payment repository scoped to the current transaction
func (r *gormPaymentTransactionalRepositories) PaymentRepo() payment.Repository {
	return NewGormPaymentRepository(r.tx)
}

// InvoiceRepo returns the invoice repository scoped to the current transaction
func (r *gormPaymentTransactionalRepositories) InvoiceRepo() billing.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// AccrualRepo returns the accrual repository scoped to the current transaction
func (r *gormPaymentTransactionalRepositories) AccrualRepo() billing.AccrualRepository {
	return NewGormAccrualRepository(r.tx)
}

// LeaseRepo returns the lease repository scoped to the current transaction
func (r *gormPaymentTransactionalRepositories) LeaseRepo() leasing.LeaseRepository {
	return NewGormLeaseRepository(r.tx)
}

var _ apppayment.TransactionScope = (*GormPaymentTransactionScope)(nil)
var _ apppayment.TransactionalRepositories = (*gormPaymentTransactionalRepositories)(nil)
