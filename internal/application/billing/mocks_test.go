package billing

import (
	"context"
	"time"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

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

// MockVATSettingRepository is a mock implementation of billing.VATSettingRepository
type MockVATSettingRepository struct {
	mock.Mock
}

func (m *MockVATSettingRepository) FindAll(ctx context.Context) ([]billing.VATSetting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]billing.VATSetting), args.Error(1)
}

func (m *MockVATSettingRepository) FindForDate(ctx context.Context, date time.Time) ([]billing.VATSetting, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]billing.VATSetting), args.Error(1)
}

func (m *MockVATSettingRepository) FindByRateAndDate(ctx context.Context, rate decimal.Decimal, validFrom time.Time) (*billing.VATSetting, error) {
	args := m.Called(ctx, rate, validFrom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.VATSetting), args.Error(1)
}

func (m *MockVATSettingRepository) Save(ctx context.Context, setting *billing.VATSetting) error {
	args := m.Called(ctx, setting)
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

// MockIndexationRepository is a mock implementation of leasing.IndexationRepository
type MockIndexationRepository struct {
	mock.Mock
}

func (m *MockIndexationRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Indexation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leasing.Indexation), args.Error(1)
}

func (m *MockIndexationRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) ([]leasing.Indexation, error) {
	args := m.Called(ctx, leaseID)
	return args.Get(0).([]leasing.Indexation), args.Error(1)
}

func (m *MockIndexationRepository) ExistsForDate(ctx context.Context, leaseID uuid.UUID, effectiveFrom time.Time) (bool, error) {
	args := m.Called(ctx, leaseID, effectiveFrom)
	return args.Bool(0), args.Error(1)
}

func (m *MockIndexationRepository) Save(ctx context.Context, ix *leasing.Indexation) error {
	args := m.Called(ctx, ix)
	return args.Error(0)
}

func (m *MockIndexationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPremiseRepository is a mock implementation of property.PremiseRepository
type MockPremiseRepository struct {
	mock.Mock
}

func (m *MockPremiseRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Premise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Premise), args.Error(1)
}

func (m *MockPremiseRepository) FindByCode(ctx context.Context, code string) (*property.Premise, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Premise), args.Error(1)
}

func (m *MockPremiseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Premise, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]property.Premise), args.Error(1)
}

func (m *MockPremiseRepository) FindAvailable(ctx context.Context, at time.Time) ([]property.Premise, error) {
	args := m.Called(ctx, at)
	return args.Get(0).([]property.Premise), args.Error(1)
}

func (m *MockPremiseRepository) Save(ctx context.Context, premise *property.Premise) error {
	args := m.Called(ctx, premise)
	return args.Error(0)
}

func (m *MockPremiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPremiseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}
