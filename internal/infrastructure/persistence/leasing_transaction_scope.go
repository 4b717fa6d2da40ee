package persistence

import (
	"context"

	appleasing "github.com/arenda/backend/internal/application/leasing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"gorm.io/gorm"
)

// GormLeasingTransactionScope implements the leasing TransactionScope using
// GORM transactions. Activation relies on it to keep the overlap check and
// the premise status flip atomic.
type GormLeasingTransactionScope struct {
	db *gorm.DB
}

// NewGormLeasingTransactionScope creates a new GormLeasingTransactionScope
func NewGormLeasingTransactionScope(db *gorm.DB) *GormLeasingTransactionScope {
	return &GormLeasingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormLeasingTransactionScope) Execute(ctx context.Context, fn func(repos appleasing.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormLeasingTransactionalRepositories{tx: tx})
	})
}

type gormLeasingTransactionalRepositories struct {
	tx *gorm.DB
}

// LeaseRepo returns the lease repository scoped to the current transaction
func (r *gormLeasingTransactionalRepositories) LeaseRepo() leasing.LeaseRepository {
	return NewGormLeaseRepository(r.tx)
}

// IndexationRepo returns the indexation repository scoped to the current transaction
func (r *gormLeasingTransactionalRepositories) IndexationRepo() leasing.IndexationRepository {
	return NewGormIndexationRepository(r.tx)
}

// PremiseRepo returns the premise repository scoped to the current transaction
func (r *gormLeasingTransactionalRepositories) PremiseRepo() property.PremiseRepository {
	return NewGormPremiseRepository(r.tx)
}

// ReservationRepo returns the reservation repository scoped to the current transaction
func (r *gormLeasingTransactionalRepositories) ReservationRepo() property.ReservationRepository {
	return NewGormReservationRepository(r.tx)
}

var _ appleasing.TransactionScope = (*GormLeasingTransactionScope)(nil)
var _ appleasing.TransactionalRepositories = (*gormLeasingTransactionalRepositories)(nil)
