package persistence

import (
	"context"
	"errors"

	"github.com/arenda/backend/internal/domain/payment"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentRepository implements payment.Repository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all payments matching the filter, newest first
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter payment.Filter) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PaymentModel{}), filter)

	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	if err := query.Order("date DESC, created_at DESC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]payment.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// FindByInvoice returns every payment linked to the invoice, refunded ones
// included
func (r *GormPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("linked_invoice_id = ?", invoiceID).
		Order("date ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]payment.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// FindByLease returns payments linked to any invoice of the lease, newest
// first
func (r *GormPaymentRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Joins("JOIN invoices ON invoices.id = payments.linked_invoice_id").
		Joins("JOIN accruals ON accruals.id = invoices.accrual_id").
		Where("accruals.lease_id = ?", leaseID).
		Order("payments.date DESC, payments.created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]payment.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// Count counts payments matching the filter
func (r *GormPaymentRepository) Count(ctx context.Context, filter payment.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PaymentModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	model := models.PaymentModelFromDomain(p)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// applyFilter applies the payment filter conditions without paging
func (r *GormPaymentRepository) applyFilter(query *gorm.DB, filter payment.Filter) *gorm.DB {
	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	return query
}

// Ensure GormPaymentRepository implements payment.Repository
var _ payment.Repository = (*GormPaymentRepository)(nil)
