package persistence

import (
	"context"

	appbilling "github.com/arenda/backend/internal/application/billing"
	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"gorm.io/gorm"
)

// GormBillingTransactionScope implements the billing TransactionScope using
// GORM transactions. The billing run opens one transaction per lease so a
// failure stays contained.
type GormBillingTransactionScope struct {
	db *gorm.DB
}

// NewGormBillingTransactionScope creates a new GormBillingTransactionScope
func NewGormBillingTransactionScope(db *gorm.DB) *GormBillingTransactionScope {
	return &GormBillingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormBillingTransactionScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormBillingTransactionalRepositories{tx: tx})
	})
}

type gormBillingTransactionalRepositories struct {
	tx *gorm.DB
}

// AccrualRepo returns the accrual repository scoped to the current transaction
func (r *gormBillingTransactionalRepositories) AccrualRepo() billing.AccrualRepository {
	return NewGormAccrualRepository(r.tx)
}

// InvoiceRepo returns the invoice repository scoped to the current transaction
func (r *gormBillingTransactionalRepositories) InvoiceRepo() billing.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// VATSettingRepo returns the VAT setting repository scoped to the current transaction
func (r *gormBillingTransactionalRepositories) VATSettingRepo() billing.VATSettingRepository {
	return NewGormVATSettingRepository(r.tx)
}

// LeaseRepo returns the lease repository scoped to the current transaction
func (r *gormBillingTransactionalRepositories) LeaseRepo() leasing.LeaseRepository {
	return NewGormLeaseRepository(r.tx)
}

// IndexationRepo returns the indexation repository scoped to the current transaction
func (r *gormBillingTransactionalRepositories) IndexationRepo() leasing.IndexationRepository {
	return NewGormIndexationRepository(r.tx)
}

// PremiseRepo returns the premise repository scoped to the current transaction
func (r *gormBillingTransactionalRepositories) PremiseRepo() property.PremiseRepository {
	return NewGormPremiseRepository(r.tx)
}

var _ appbilling.TransactionScope = (*GormBillingTransactionScope)(nil)
var _ appbilling.TransactionalRepositories = (*gormBillingTransactionalRepositories)(nil)
