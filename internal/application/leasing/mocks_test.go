package leasing

import (
	"context"
	"time"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/domain/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindOccupying(ctx context.Context, premiseID uuid.UUID, excludeID *uuid.UUID) ([]leasing.Lease, error) {
	args := m.Called(ctx, premiseID, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindActiveInPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]leasing.Lease, error) {
	args := m.Called(ctx, periodStart, periodEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Premise), args.Error(1)
}

func (m *MockPremiseRepository) FindAvailable(ctx context.Context, at time.Time) ([]property.Premise, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindActiveByPremise(ctx context.Context, premiseID uuid.UUID, at time.Time, excludeID *uuid.UUID) (*property.Reservation, error) {
	args := m.Called(ctx, premiseID, at, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindExpiring(ctx context.Context, now time.Time) ([]property.Reservation, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Reservation), args.Error(1)
}

func (m *MockReservationRepository) DeleteByPremise(ctx context.Context, premiseID uuid.UUID) error {
	args := m.Called(ctx, premiseID)
	return args.Error(0)
}

func (m *MockReservationRepository) Save(ctx context.Context, reservation *property.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenant.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *tenant.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
