package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIndexationRepository implements IndexationRepository using GORM
type GormIndexationRepository struct {
	db *gorm.DB
}

// NewGormIndexationRepository creates a new GormIndexationRepository
func NewGormIndexationRepository(db *gorm.DB) *GormIndexationRepository {
	return &GormIndexationRepository{db: db}
}

// FindByID finds an indexation by its ID
func (r *GormIndexationRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Indexation, error) {
	var model models.IndexationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByLease finds all indexations of a lease, newest effective first
func (r *GormIndexationRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) ([]leasing.Indexation, error) {
	var indexationModels []models.IndexationModel
	if err := r.db.WithContext(ctx).
		Where("lease_id = ?", leaseID).
		Order("effective_from DESC").
		Find(&indexationModels).Error; err != nil {
		return nil, err
	}

	indexations := make([]leasing.Indexation, len(indexationModels))
	for i, model := range indexationModels {
		indexations[i] = *model.ToDomain()
	}
	return indexations, nil
}

// ExistsForDate reports whether the lease already has an indexation with the
// given effective date
func (r *GormIndexationRepository) ExistsForDate(ctx context.Context, leaseID uuid.UUID, effectiveFrom time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.IndexationModel{}).
		Where("lease_id = ? AND effective_from = ?", leaseID, effectiveFrom).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an indexation
func (r *GormIndexationRepository) Save(ctx context.Context, ix *leasing.Indexation) error {
	model := models.IndexationModelFromDomain(ix)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// Delete removes an indexation
func (r *GormIndexationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.IndexationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormIndexationRepository implements IndexationRepository
var _ leasing.IndexationRepository = (*GormIndexationRepository)(nil)
