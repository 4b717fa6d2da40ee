package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/domain/tenant"
	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTenantRepository implements tenant.Repository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUNP finds a tenant by its tax identifier
func (r *GormTenantRepository) FindByUNP(ctx context.Context, unp string) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).
		Where("unp = ?", strings.TrimSpace(unp)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all tenants matching the filter
func (r *GormTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenant.Tenant, error) {
	var tenantModels []models.TenantModel
	query := r.db.WithContext(ctx).Model(&models.TenantModel{})

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR unp ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, TenantSortFields, "name")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("name ASC")
	}

	if err := query.Find(&tenantModels).Error; err != nil {
		return nil, err
	}

	tenants := make([]tenant.Tenant, len(tenantModels))
	for i, model := range tenantModels {
		tenants[i] = *model.ToDomain()
	}
	return tenants, nil
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, t *tenant.Tenant) error {
	model := models.TenantModelFromDomain(t)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// Delete removes a tenant
func (r *GormTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TenantModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTenantRepository implements tenant.Repository
var _ tenant.Repository = (*GormTenantRepository)(nil)
