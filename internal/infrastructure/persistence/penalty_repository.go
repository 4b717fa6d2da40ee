package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/arenda/backend/internal/domain/arrears"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPenaltyRepository implements PenaltyRepository using GORM
type GormPenaltyRepository struct {
	db *gorm.DB
}

// NewGormPenaltyRepository creates a new GormPenaltyRepository
func NewGormPenaltyRepository(db *gorm.DB) *GormPenaltyRepository {
	return &GormPenaltyRepository{db: db}
}

// FindByID finds a penalty by its ID
func (r *GormPenaltyRepository) FindByID(ctx context.Context, id uuid.UUID) (*arrears.Penalty, error) {
	var model models.PenaltyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all penalties matching the filter, newest window first
func (r *GormPenaltyRepository) FindAll(ctx context.Context, filter arrears.PenaltyFilter) ([]arrears.Penalty, error) {
	var penaltyModels []models.PenaltyModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PenaltyModel{}), filter)

	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	if err := query.Order("period_to DESC").Find(&penaltyModels).Error; err != nil {
		return nil, err
	}

	penalties := make([]arrears.Penalty, len(penaltyModels))
	for i, model := range penaltyModels {
		penalties[i] = *model.ToDomain()
	}
	return penalties, nil
}

// Count counts penalties matching the filter
func (r *GormPenaltyRepository) Count(ctx context.Context, filter arrears.PenaltyFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PenaltyModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByWindow removes any penalty already recorded for the same lease and
// window so a rerun replaces it
func (r *GormPenaltyRepository) DeleteByWindow(ctx context.Context, leaseID uuid.UUID, from, to time.Time) error {
	return r.db.WithContext(ctx).
		Delete(&models.PenaltyModel{},
			"lease_id = ? AND period_from = ? AND period_to = ?", leaseID, from, to).Error
}

// Save creates or updates a penalty
func (r *GormPenaltyRepository) Save(ctx context.Context, p *arrears.Penalty) error {
	model := models.PenaltyModelFromDomain(p)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// applyFilter applies the penalty filter conditions without paging
func (r *GormPenaltyRepository) applyFilter(query *gorm.DB, filter arrears.PenaltyFilter) *gorm.DB {
	if filter.LeaseID != nil {
		query = query.Where("lease_id = ?", *filter.LeaseID)
	}
	if filter.From != nil {
		query = query.Where("period_to >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("period_from <= ?", *filter.To)
	}
	return query
}

// Ensure GormPenaltyRepository implements PenaltyRepository
var _ arrears.PenaltyRepository = (*GormPenaltyRepository)(nil)
