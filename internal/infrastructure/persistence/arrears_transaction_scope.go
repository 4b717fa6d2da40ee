package persistence

import (
	"context"

	apparrears "github.com/arenda/backend/internal/application/arrears"
	"github.com/arenda/backend/internal/domain/arrears"
	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/payment"
	"gorm.io/gorm"
)

// GormArrearsTransactionScope implements the arrears TransactionScope using
// GORM transactions. Penalty reruns delete and insert the same window inside
// one transaction.
type GormArrearsTransactionScope struct {
	db *gorm.DB
}

// NewGormArrearsTransactionScope creates a new GormArrearsTransactionScope
func NewGormArrearsTransactionScope(db *gorm.DB) *GormArrearsTransactionScope {
	return &GormArrearsTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormArrearsTransactionScope) Execute(ctx context.Context, fn func(repos apparrears.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormArrearsTransactionalRepositories{tx: tx})
	})
}

type gormArrearsTransactionalRepositories struct {
	tx *gorm.DB
}

// PenaltyRepo returns the penalty repository scoped to the current transaction
func (r *gormArrearsTransactionalRepositories) PenaltyRepo() arrears.PenaltyRepository {
	return NewGormPenaltyRepository(r.tx)
}

// InvoiceRepo returns the invoice repository scoped to the current transaction
func (r *gormArrearsTransactionalRepositories) InvoiceRepo() billing.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// AccrualRepo returns the accrual repository scoped to the current transaction
func (r *gormArrearsTransactionalRepositories) AccrualRepo() billing.AccrualRepository {
	return NewGormAccrualRepository(r.tx)
}

// LeaseRepo returns the lease repository scoped to the current transaction
func (r *gormArrearsTransactionalRepositories) LeaseRepo() leasing.LeaseRepository {
	return NewGormLeaseRepository(r.tx)
}

// PaymentRepo returns the payment repository scoped to the current transaction
func (r *gormArrearsTransactionalRepositories) PaymentRepo() payment.Repository {
	return NewGormPaymentRepository(r.tx)
}

var _ apparrears.TransactionScope = (*GormArrearsTransactionScope)(nil)
var _ apparrears.TransactionalRepositories = (*gormArrearsTransactionalRepositories)(nil)
