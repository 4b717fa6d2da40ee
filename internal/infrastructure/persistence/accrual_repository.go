package persistence

import (
	"context"
	"errors"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccrualRepository implements AccrualRepository using GORM
type GormAccrualRepository struct {
	db *gorm.DB
}

// NewGormAccrualRepository creates a new GormAccrualRepository
func NewGormAccrualRepository(db *gorm.DB) *GormAccrualRepository {
	return &GormAccrualRepository{db: db}
}

// FindByID finds an accrual by its ID
func (r *GormAccrualRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Accrual, error) {
	var model models.AccrualModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByLeaseAndPeriod finds the accrual for a (lease, period) pair
func (r *GormAccrualRepository) FindByLeaseAndPeriod(ctx context.Context, leaseID uuid.UUID, period billing.Period) (*billing.Accrual, error) {
	var model models.AccrualModel
	if err := r.db.WithContext(ctx).
		Where("lease_id = ? AND period_year = ? AND period_month = ?",
			leaseID, period.Year, int(period.Month)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByLease finds all accruals of a lease, newest period first
func (r *GormAccrualRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) ([]billing.Accrual, error) {
	var accrualModels []models.AccrualModel
	if err := r.db.WithContext(ctx).
		Where("lease_id = ?", leaseID).
		Order("period_year DESC, period_month DESC").
		Find(&accrualModels).Error; err != nil {
		return nil, err
	}

	accruals := make([]billing.Accrual, len(accrualModels))
	for i, model := range accrualModels {
		accruals[i] = *model.ToDomain()
	}
	return accruals, nil
}

// FindByPeriod finds all accruals for a billing period
func (r *GormAccrualRepository) FindByPeriod(ctx context.Context, period billing.Period) ([]billing.Accrual, error) {
	var accrualModels []models.AccrualModel
	if err := r.db.WithContext(ctx).
		Where("period_year = ? AND period_month = ?", period.Year, int(period.Month)).
		Order("created_at ASC").
		Find(&accrualModels).Error; err != nil {
		return nil, err
	}

	accruals := make([]billing.Accrual, len(accrualModels))
	for i, model := range accrualModels {
		accruals[i] = *model.ToDomain()
	}
	return accruals, nil
}

// Save persists an accrual. A uniqueness violation on (lease, period)
// surfaces as shared.ErrAlreadyExists.
func (r *GormAccrualRepository) Save(ctx context.Context, accrual *billing.Accrual) error {
	model := models.AccrualModelFromDomain(accrual)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// Ensure GormAccrualRepository implements AccrualRepository
var _ billing.AccrualRepository = (*GormAccrualRepository)(nil)
