package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPremiseRepository implements PremiseRepository using GORM
type GormPremiseRepository struct {
	db *gorm.DB
}

// NewGormPremiseRepository creates a new GormPremiseRepository
func NewGormPremiseRepository(db *gorm.DB) *GormPremiseRepository {
	return &GormPremiseRepository{db: db}
}

// FindByID finds a premise by its ID
func (r *GormPremiseRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Premise, error) {
	var model models.PremiseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a premise by its human-readable code
func (r *GormPremiseRepository) FindByCode(ctx context.Context, code string) (*property.Premise, error) {
	var model models.PremiseModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all premises matching the filter
func (r *GormPremiseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Premise, error) {
	var premiseModels []models.PremiseModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PremiseModel{}), filter)

	if err := query.Find(&premiseModels).Error; err != nil {
		return nil, err
	}

	premises := make([]property.Premise, len(premiseModels))
	for i, model := range premiseModels {
		premises[i] = *model.ToDomain()
	}
	return premises, nil
}

// FindAvailable finds FREE premises available at the given instant
func (r *GormPremiseRepository) FindAvailable(ctx context.Context, at time.Time) ([]property.Premise, error) {
	var premiseModels []models.PremiseModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", property.PremiseStatusFree).
		Where("available_from IS NULL OR available_from <= ?", at).
		Order("code ASC").
		Find(&premiseModels).Error; err != nil {
		return nil, err
	}

	premises := make([]property.Premise, len(premiseModels))
	for i, model := range premiseModels {
		premises[i] = *model.ToDomain()
	}
	return premises, nil
}

// Save creates or updates a premise
func (r *GormPremiseRepository) Save(ctx context.Context, premise *property.Premise) error {
	model := models.PremiseModelFromDomain(premise)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// Delete removes a premise
func (r *GormPremiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PremiseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts premises matching the filter
func (r *GormPremiseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.PremiseModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies all filter options including pagination
func (r *GormPremiseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, PremiseSortFields, "code")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("code ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPremiseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR address ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "rate_type":
			query = query.Where("rate_type = ?", value)
		case "floor":
			query = query.Where("floor = ?", value)
		}
	}

	return query
}

// Ensure GormPremiseRepository implements PremiseRepository
var _ property.PremiseRepository = (*GormPremiseRepository)(nil)
