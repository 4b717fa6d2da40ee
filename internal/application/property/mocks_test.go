package property

import (
	"context"
	"time"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

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
