package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds an invoice by its human-readable number
func (r *GormInvoiceRepository) FindByNumber(ctx context.Context, number string) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("number = ?", strings.TrimSpace(number)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAccrual finds the invoice belonging to an accrual
func (r *GormInvoiceRepository) FindByAccrual(ctx context.Context, accrualID uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("accrual_id = ?", accrualID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds invoices matching the filter
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), filter)

	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// FindDatedWithin finds invoices dated inside [from, to]
func (r *GormInvoiceRepository) FindDatedWithin(ctx context.Context, from, to time.Time) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// FindByLease finds invoices of a lease through its accruals
func (r *GormInvoiceRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Joins("JOIN accruals ON accruals.id = invoices.accrual_id").
		Where("accruals.lease_id = ?", leaseID).
		Order("accruals.period_year DESC, accruals.period_month DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// Count counts invoices matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// applyFilter applies all filter options including pagination
func (r *GormInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, InvoiceSortFields, "date")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("date DESC, number DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormInvoiceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
