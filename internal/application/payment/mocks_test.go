package payment

import (
	"context"
	"time"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/payment"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/domain/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository is a mock implementation of payment.Repository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter payment.Filter) ([]payment.Payment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]payment.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) ([]payment.Payment, error) {
	args := m.Called(ctx, leaseID)
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Count(ctx context.Context, filter payment.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of billing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, number string) (*billing.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByAccrual(ctx context.Context, accrualID uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, accrualID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindDatedWithin(ctx context.Context, from, to time.Time) ([]billing.Invoice, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) ([]billing.Invoice, error) {
	args := m.Called(ctx, leaseID)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// MockAccrualRepository is a mock implementation of billing.AccrualRepository
type MockAccrualRepository struct {
	mock.Mock
}

func (m *MockAccrualRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Accrual, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Accrual), args.Error(1)
}

func (m *MockAccrualRepository) FindByLeaseAndPeriod(ctx context.Context, leaseID uuid.UUID, period billing.Period) (*billing.Accrual, error) {
	args := m.Called(ctx, leaseID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Accrual), args.Error(1)
}

func (m *MockAccrualRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) ([]billing.Accrual, error) {
	args := m.Called(ctx, leaseID)
	return args.Get(0).([]billing.Accrual), args.Error(1)
}

func (m *MockAccrualRepository) FindByPeriod(ctx context.Context, period billing.Period) ([]billing.Accrual, error) {
	args := m.Called(ctx, period)
	return args.Get(0).([]billing.Accrual), args.Error(1)
}

func (m *MockAccrualRepository) Save(ctx context.Context, accrual *billing.Accrual) error {
	args := m.Called(ctx, accrual)
	return args.Error(0)
}

// MockLeaseRepository is a mock implementation of leasing.LeaseRepository
type MockLeaseRepository struct {
	mock.Mock
}

func (m *MockLeaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]leasing.Lease, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindOccupying(ctx context.Context, premiseID uuid.UUID, excludeID *uuid.UUID) ([]leasing.Lease, error) {
	args := m.Called(ctx, premiseID, excludeID)
	return args.Get(0).([]leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindActiveInPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]leasing.Lease, error) {
	args := m.Called(ctx, periodStart, periodEnd)
	return args.Get(0).([]leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) CountActivatedInYear(ctx context.Context, year int) (int64, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaseRepository) CountByPremise(ctx context.Context, premiseID uuid.UUID) (int64, error) {
	args := m.Called(ctx, premiseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaseRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaseRepository) Save(ctx context.Context, lease *leasing.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTenantRepository is a mock implementation of tenant.Repository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByUNP(ctx context.Context, unp string) (*tenant.Tenant, error) {
	args := m.Called(ctx, unp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tenant.Tenant, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]tenant.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, t *tenant.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
