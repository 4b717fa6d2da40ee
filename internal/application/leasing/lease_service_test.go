package leasing

import (
	"context"
	"testing"
	"time"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/domain/tenant"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type leaseFixture struct {
	leaseRepo       *MockLeaseRepository
	indexationRepo  *MockIndexationRepository
	premiseRepo     *MockPremiseRepository
	reservationRepo *MockReservationRepository
	tenantRepo      *MockTenantRepository
	service         *LeaseService
	now             time.Time
}

func newLeaseFixture() *leaseFixture {
	f := &leaseFixture{
		leaseRepo:       new(MockLeaseRepository),
		indexationRepo:  new(MockIndexationRepository),
		premiseRepo:     new(MockPremiseRepository),
		reservationRepo: new(MockReservationRepository),
		tenantRepo:      new(MockTenantRepository),
		now:             time.Date(2025, time.February, 14, 10, 0, 0, 0, time.UTC),
	}
	scope := NewNoOpTransactionScope(f.leaseRepo, f.indexationRepo, f.premiseRepo, f.reservationRepo)
	f.service = NewLeaseService(scope, f.tenantRepo, shared.FixedClock{Instant: f.now})
	return f
}

func (f *leaseFixture) knownTenant(t *testing.T) *tenant.Tenant {
	t.Helper()
	tn, err := tenant.NewTenant(tenant.TenantTypeLegal, "OOO Vesna", "190000001", "info@vesna.by", "", "", "")
	require.NoError(t, err)
	return tn
}

func (f *leaseFixture) reservedPremise(t *testing.T) *property.Premise {
	t.Helper()
	p, err := property.NewPremise("B-201", property.PremiseTypeRetail, "Minsk, Kalvariyskaya 1", nil,
		decimal.RequireFromString("80"), property.RateTypePerArea, decimal.RequireFromString("22"), nil)
	require.NoError(t, err)
	require.NoError(t, p.MarkReserved())
	p.ClearDomainEvents()
	return p
}

func (f *leaseFixture) createRequest(premiseID, tenantID uuid.UUID) CreateLeaseRequest {
	return CreateLeaseRequest{
		PremiseID:         premiseID,
		TenantID:          tenantID,
		PeriodFrom:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		RateBase:          "M2",
		DueDay:            10,
		PenaltyRatePerDay: decimal.RequireFromString("0.1"),
	}
}

func (f *leaseFixture) draftLease(t *testing.T, premiseID, tenantID uuid.UUID) *leasing.Lease {
	t.Helper()
	l, err := leasing.NewLease(leasing.LeaseTerms{
		PremiseID:         premiseID,
		TenantID:          tenantID,
		PeriodFrom:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		RateBase:          property.RateTypePerArea,
		DueDay:            10,
		PenaltyRatePerDay: decimal.RequireFromString("0.1"),
	}, nil, nil)
	require.NoError(t, err)
	l.ClearDomainEvents()
	return l
}

func TestLeaseCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("drafts a contract without a number", func(t *testing.T) {
		f := newLeaseFixture()
		tn := f.knownTenant(t)
		premise := f.reservedPremise(t)

		f.tenantRepo.On("FindByID", ctx, tn.ID).Return(tn, nil)
		f.premiseRepo.On("FindByID", ctx, premise.ID).Return(premise, nil)
		f.leaseRepo.On("FindOccupying", ctx, premise.ID, (*uuid.UUID)(nil)).Return([]leasing.Lease{}, nil)
		f.leaseRepo.On("Save", ctx, mock.AnythingOfType("*leasing.Lease")).Return(nil)

		resp, err := f.service.Create(ctx, f.createRequest(premise.ID, tn.ID))
		require.NoError(t, err)
		assert.Equal(t, leasing.LeaseStatusDraft, resp.Status)
		assert.Empty(t, resp.Number)
		assert.Equal(t, "BYN", resp.Currency)
	})

	t.Run("rejects a period overlapping an occupying lease", func(t *testing.T) {
		f := newLeaseFixture()
		tn := f.knownTenant(t)
		premise := f.reservedPremise(t)
		occupying := f.draftLease(t, premise.ID, uuid.New())
		occupying.Status = leasing.LeaseStatusActive

		f.tenantRepo.On("FindByID", ctx, tn.ID).Return(tn, nil)
		f.premiseRepo.On("FindByID", ctx, premise.ID).Return(premise, nil)
		f.leaseRepo.On("FindOccupying", ctx, premise.ID, (*uuid.UUID)(nil)).Return([]leasing.Lease{*occupying}, nil)

		_, err := f.service.Create(ctx, f.createRequest(premise.ID, tn.ID))
		require.ErrorIs(t, err, shared.ErrPeriodOverlap)
		f.leaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("a linked reservation must hold the same premise", func(t *testing.T) {
		f := newLeaseFixture()
		tn := f.knownTenant(t)
		premise := f.reservedPremise(t)
		stray, err := property.NewReservation(uuid.New(), f.now.Add(24*time.Hour), f.now.Add(-time.Hour), nil)
		require.NoError(t, err)

		f.tenantRepo.On("FindByID", ctx, tn.ID).Return(tn, nil)
		f.premiseRepo.On("FindByID", ctx, premise.ID).Return(premise, nil)
		f.reservationRepo.On("FindByID", ctx, stray.ID).Return(stray, nil)

		req := f.createRequest(premise.ID, tn.ID)
		req.ReservationID = &stray.ID
		_, err = f.service.Create(ctx, req)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RESERVATION_MISMATCH", domainErr.Code)
	})

	t.Run("a lapsed reservation cannot back a draft", func(t *testing.T) {
		f := newLeaseFixture()
		tn := f.knownTenant(t)
		premise := f.reservedPremise(t)
		lapsed, err := property.NewReservation(premise.ID, f.now.Add(-time.Minute), f.now.Add(-time.Hour), nil)
		require.NoError(t, err)

		f.tenantRepo.On("FindByID", ctx, tn.ID).Return(tn, nil)
		f.premiseRepo.On("FindByID", ctx, premise.ID).Return(premise, nil)
		f.reservationRepo.On("FindByID", ctx, lapsed.ID).Return(lapsed, nil)

		req := f.createRequest(premise.ID, tn.ID)
		req.ReservationID = &lapsed.ID
		_, err = f.service.Create(ctx, req)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RESERVATION_INACTIVE", domainErr.Code)
	})

	t.Run("unknown tenant fails before anything else", func(t *testing.T) {
		f := newLeaseFixture()
		tenantID := uuid.New()
		f.tenantRepo.On("FindByID", ctx, tenantID).Return(nil, shared.ErrNotFound)

		_, err := f.service.Create(ctx, f.createRequest(uuid.New(), tenantID))
		require.ErrorIs(t, err, shared.ErrNotFound)
		f.premiseRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestLeaseActivate(t *testing.T) {
	ctx := context.Background()

	t.Run("numbers the contract, rents the premise, consumes the reservation", func(t *testing.T) {
		f := newLeaseFixture()
		premise := f.reservedPremise(t)
		reservation, err := property.NewReservation(premise.ID, f.now.Add(24*time.Hour), f.now.Add(-time.Hour), nil)
		require.NoError(t, err)
		reservation.ClearDomainEvents()

		lease := f.draftLease(t, premise.ID, uuid.New())
		lease.ReservationID = &reservation.ID

		f.leaseRepo.On("FindByID", ctx, lease.ID).Return(lease, nil)
		f.leaseRepo.On("FindOccupying", ctx, premise.ID, &lease.ID).Return([]leasing.Lease{}, nil)
		f.leaseRepo.On("CountActivatedInYear", ctx, 2025).Return(int64(2), nil)
		f.leaseRepo.On("Save", ctx, lease).Return(nil)
		f.premiseRepo.On("FindByID", ctx, premise.ID).Return(premise, nil)
		f.premiseRepo.On("Save", ctx, premise).Return(nil)
		f.reservationRepo.On("FindByID", ctx, reservation.ID).Return(reservation, nil)
		f.reservationRepo.On("Save", ctx, reservation).Return(nil)

		resp, err := f.service.Activate(ctx, lease.ID)
		require.NoError(t, err)
		assert.Equal(t, leasing.LeaseStatusActive, resp.Status)
		assert.Equal(t, "LEASE-2025-0003", resp.Number)
		assert.Equal(t, property.PremiseStatusRented, premise.Status)
		assert.Equal(t, property.ReservationStatusCancelled, reservation.Status)
	})

	t.Run("a period conflict blocks activation", func(t *testing.T) {
		f := newLeaseFixture()
		premiseID := uuid.New()
		lease := f.draftLease(t, premiseID, uuid.New())
		occupying := f.draftLease(t, premiseID, uuid.New())
		occupying.Status = leasing.LeaseStatusActive

		f.leaseRepo.On("FindByID", ctx, lease.ID).Return(lease, nil)
		f.leaseRepo.On("FindOccupying", ctx, premiseID, &lease.ID).Return([]leasing.Lease{*occupying}, nil)

		_, err := f.service.Activate(ctx, lease.ID)
		require.ErrorIs(t, err, shared.ErrPeriodOverlap)
		f.leaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestLeaseTerminateAndClose(t *testing.T) {
	ctx := context.Background()

	activeLease := func(t *testing.T, f *leaseFixture, premiseID uuid.UUID) *leasing.Lease {
		t.Helper()
		l := f.draftLease(t, premiseID, uuid.New())
		require.NoError(t, l.Activate("LEASE-2025-0001", f.now))
		l.ClearDomainEvents()
		return l
	}

	t.Run("terminate keeps the premise occupied", func(t *testing.T) {
		f := newLeaseFixture()
		lease := activeLease(t, f, uuid.New())

		f.leaseRepo.On("FindByID", ctx, lease.ID).Return(lease, nil)
		f.leaseRepo.On("Save", ctx, lease).Return(nil)

		resp, err := f.service.Terminate(ctx, lease.ID)
		require.NoError(t, err)
		assert.Equal(t, leasing.LeaseStatusTerminating, resp.Status)
		f.premiseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("close frees the premise with the closing instant", func(t *testing.T) {
		f := newLeaseFixture()
		premise := f.reservedPremise(t)
		require.NoError(t, premise.MarkRented())
		premise.ClearDomainEvents()
		lease := activeLease(t, f, premise.ID)

		f.leaseRepo.On("FindByID", ctx, lease.ID).Return(lease, nil)
		f.leaseRepo.On("Save", ctx, lease).Return(nil)
		f.premiseRepo.On("FindByID", ctx, premise.ID).Return(premise, nil)
		f.premiseRepo.On("Save", ctx, premise).Return(nil)

		resp, err := f.service.Close(ctx, lease.ID)
		require.NoError(t, err)
		assert.Equal(t, leasing.LeaseStatusClosed, resp.Status)
		assert.Equal(t, property.PremiseStatusFree, premise.Status)
		require.NotNil(t, premise.AvailableFrom)
		assert.Equal(t, f.now, *premise.AvailableFrom)
	})

	t.Run("a draft cannot be closed", func(t *testing.T) {
		f := newLeaseFixture()
		lease := f.draftLease(t, uuid.New(), uuid.New())

		f.leaseRepo.On("FindByID", ctx, lease.ID).Return(lease, nil)

		_, err := f.service.Close(ctx, lease.ID)
		require.Error(t, err)
		f.leaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestLeaseDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a draft", func(t *testing.T) {
		f := newLeaseFixture()
		lease := f.draftLease(t, uuid.New(), uuid.New())

		f.leaseRepo.On("FindByID", ctx, lease.ID).Return(lease, nil)
		f.leaseRepo.On("Delete", ctx, lease.ID).Return(nil)

		require.NoError(t, f.service.Delete(ctx, lease.ID))
		f.leaseRepo.AssertExpectations(t)
	})

	t.Run("refuses anything past DRAFT", func(t *testing.T) {
		f := newLeaseFixture()
		lease := f.draftLease(t, uuid.New(), uuid.New())
		require.NoError(t, lease.Activate("LEASE-2025-0001", f.now))

		f.leaseRepo.On("FindByID", ctx, lease.ID).Return(lease, nil)

		err := f.service.Delete(ctx, lease.ID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		f.leaseRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestIndexations(t *testing.T) {
	ctx := context.Background()
	effectiveFrom := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("records a rate multiplier", func(t *testing.T) {
		f := newLeaseFixture()
		lease := f.draftLease(t, uuid.New(), uuid.New())

		f.leaseRepo.On("FindByID", ctx, lease.ID).Return(lease, nil)
		f.indexationRepo.On("ExistsForDate", ctx, lease.ID, effectiveFrom).Return(false, nil)
		f.indexationRepo.On("Save", ctx, mock.AnythingOfType("*leasing.Indexation")).Return(nil)

		resp, err := f.service.AddIndexation(ctx, lease.ID, AddIndexationRequest{
			Factor:        decimal.RequireFromString("1.05"),
			EffectiveFrom: effectiveFrom,
		})
		require.NoError(t, err)
		assert.Equal(t, "1.05", resp.Factor.String())
	})

	t.Run("one entry per lease per effective date", func(t *testing.T) {
		f := newLeaseFixture()
		lease := f.draftLease(t, uuid.New(), uuid.New())

		f.leaseRepo.On("FindByID", ctx, lease.ID).Return(lease, nil)
		f.indexationRepo.On("ExistsForDate", ctx, lease.ID, effectiveFrom).Return(true, nil)

		_, err := f.service.AddIndexation(ctx, lease.ID, AddIndexationRequest{
			Factor:        decimal.RequireFromString("1.05"),
			EffectiveFrom: effectiveFrom,
		})
		require.ErrorIs(t, err, shared.ErrAlreadyExists)
		f.indexationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("removal checks lease ownership", func(t *testing.T) {
		f := newLeaseFixture()
		leaseID := uuid.New()
		ix, err := leasing.NewIndexation(uuid.New(), decimal.RequireFromString("1.1"), effectiveFrom)
		require.NoError(t, err)

		f.indexationRepo.On("FindByID", ctx, ix.ID).Return(ix, nil)

		err = f.service.RemoveIndexation(ctx, leaseID, ix.ID)
		require.ErrorIs(t, err, shared.ErrNotFound)
		f.indexationRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
