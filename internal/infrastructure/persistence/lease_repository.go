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

// GormLeaseRepository implements LeaseRepository using GORM
type GormLeaseRepository struct {
	db *gorm.DB
}

// NewGormLeaseRepository creates a new GormLeaseRepository
func NewGormLeaseRepository(db *gorm.DB) *GormLeaseRepository {
	return &GormLeaseRepository{db: db}
}

// FindByID finds a lease by its ID
func (r *GormLeaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Lease, error) {
	var model models.LeaseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all leases matching the filter
func (r *GormLeaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]leasing.Lease, error) {
	var leaseModels []models.LeaseModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.LeaseModel{}), filter)

	if err := query.Find(&leaseModels).Error; err != nil {
		return nil, err
	}

	leases := make([]leasing.Lease, len(leaseModels))
	for i, model := range leaseModels {
		leases[i] = *model.ToDomain()
	}
	return leases, nil
}

// FindOccupying finds ACTIVE/TERMINATING leases for a premise, excluding
// excludeID when non-nil
func (r *GormLeaseRepository) FindOccupying(ctx context.Context, premiseID uuid.UUID, excludeID *uuid.UUID) ([]leasing.Lease, error) {
	query := r.db.WithContext(ctx).
		Where("premise_id = ? AND status IN ?", premiseID,
			[]leasing.LeaseStatus{leasing.LeaseStatusActive, leasing.LeaseStatusTerminating})
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var leaseModels []models.LeaseModel
	if err := query.Find(&leaseModels).Error; err != nil {
		return nil, err
	}

	leases := make([]leasing.Lease, len(leaseModels))
	for i, model := range leaseModels {
		leases[i] = *model.ToDomain()
	}
	return leases, nil
}

// FindActiveInPeriod finds ACTIVE leases whose period overlaps [periodStart, periodEnd]
func (r *GormLeaseRepository) FindActiveInPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]leasing.Lease, error) {
	var leaseModels []models.LeaseModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", leasing.LeaseStatusActive).
		Where("period_from <= ?", periodEnd).
		Where("period_to IS NULL OR period_to >= ?", periodStart).
		Order("number ASC").
		Find(&leaseModels).Error; err != nil {
		return nil, err
	}

	leases := make([]leasing.Lease, len(leaseModels))
	for i, model := range leaseModels {
		leases[i] = *model.ToDomain()
	}
	return leases, nil
}

// CountActivatedInYear counts leases whose contract date falls within the
// given calendar year
func (r *GormLeaseRepository) CountActivatedInYear(ctx context.Context, year int) (int64, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LeaseModel{}).
		Where("date IS NOT NULL AND date >= ? AND date < ?", yearStart, yearEnd).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByPremise counts leases referencing a premise (any status)
func (r *GormLeaseRepository) CountByPremise(ctx context.Context, premiseID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LeaseModel{}).
		Where("premise_id = ?", premiseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByTenant counts leases referencing a tenant (any status)
func (r *GormLeaseRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LeaseModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a lease
func (r *GormLeaseRepository) Save(ctx context.Context, lease *leasing.Lease) error {
	model := models.LeaseModelFromDomain(lease)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// Delete removes a lease
func (r *GormLeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LeaseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies all filter options including pagination
func (r *GormLeaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "premise_id":
			query = query.Where("premise_id = ?", value)
		case "tenant_id":
			query = query.Where("tenant_id = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, LeaseSortFields, "period_from")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("period_from DESC")
	}

	return query
}

// Ensure GormLeaseRepository implements LeaseRepository
var _ leasing.LeaseRepository = (*GormLeaseRepository)(nil)
