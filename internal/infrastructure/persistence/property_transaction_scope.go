package persistence

import (
	"context"

	appproperty "github.com/arenda/backend/internal/application/property"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"gorm.io/gorm"
)

// GormPropertyTransactionScope implements the property TransactionScope
// using GORM transactions
type GormPropertyTransactionScope struct {
	db *gorm.DB
}

// NewGormPropertyTransactionScope creates a new GormPropertyTransactionScope
func NewGormPropertyTransactionScope(db *gorm.DB) *GormPropertyTransactionScope {
	return &GormPropertyTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. If the
// function returns an error, the transaction is rolled back.
func (s *GormPropertyTransactionScope) Execute(ctx context.Context, fn func(repos appproperty.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPropertyTransactionalRepositories{tx: tx})
	})
}

type gormPropertyTransactionalRepositories struct {
	tx *gorm.DB
}

// PremiseRepo returns the premise repository scoped to the current transaction
func (r *gormPropertyTransactionalRepositories) PremiseRepo() property.PremiseRepository {
	return NewGormPremiseRepository(r.tx)
}

// ReservationRepo returns the reservation repository scoped to the current transaction
func (r *gormPropertyTransactionalRepositories) ReservationRepo() property.ReservationRepository {
	return NewGormReservationRepository(r.tx)
}

// LeaseRepo returns the lease repository scoped to the current transaction
func (r *gormPropertyTransactionalRepositories) LeaseRepo() leasing.LeaseRepository {
	return NewGormLeaseRepository(r.tx)
}

var _ appproperty.TransactionScope = (*GormPropertyTransactionScope)(nil)
var _ appproperty.TransactionalRepositories = (*gormPropertyTransactionalRepositories)(nil)
