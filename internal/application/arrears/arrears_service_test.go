package arrears

import (
	"context"
	"testing"
	"time"

	"github.com/arenda/backend/internal/domain/arrears"
	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/payment"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type arrearsFixture struct {
	penaltyRepo *MockPenaltyRepository
	invoiceRepo *MockInvoiceRepository
	accrualRepo *MockAccrualRepository
	leaseRepo   *MockLeaseRepository
	paymentRepo *MockPaymentRepository
	service     *ArrearsService
	now         time.Time
}

func newArrearsFixture() *arrearsFixture {
	f := &arrearsFixture{
		penaltyRepo: new(MockPenaltyRepository),
		invoiceRepo: new(MockInvoiceRepository),
		accrualRepo: new(MockAccrualRepository),
		leaseRepo:   new(MockLeaseRepository),
		paymentRepo: new(MockPaymentRepository),
		now:         time.Date(2025, time.April, 25, 12, 0, 0, 0, time.UTC),
	}
	scope := NewNoOpTransactionScope(f.penaltyRepo, f.invoiceRepo, f.accrualRepo, f.leaseRepo, f.paymentRepo)
	f.service = NewArrearsService(scope, shared.FixedClock{Instant: f.now}, nil)
	return f
}

// debtFixture is one invoice with its accrual and lease, due April 10th
type debtFixture struct {
	lease   *leasing.Lease
	accrual *billing.Accrual
	invoice billing.Invoice
}

func newDebt(t *testing.T, total, penaltyRate string) *debtFixture {
	t.Helper()
	lease := &leasing.Lease{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            "LEASE-2025-0001",
		PremiseID:         uuid.New(),
		TenantID:          uuid.New(),
		DueDay:            10,
		PenaltyRatePerDay: decimal.RequireFromString(penaltyRate),
		Status:            leasing.LeaseStatusActive,
	}
	accrual := &billing.Accrual{
		BaseEntity: shared.NewBaseEntity(),
		LeaseID:    lease.ID,
		Period:     billing.Period{Year: 2025, Month: time.April},
		Total:      decimal.RequireFromString(total),
	}
	inv, err := billing.NewInvoice(accrual.ID, "INV-202504-0001", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return &debtFixture{lease: lease, accrual: accrual, invoice: *inv}
}

func (d *debtFixture) expectWalk(ctx context.Context, f *arrearsFixture, payments []payment.Payment) {
	f.accrualRepo.On("FindByID", ctx, d.invoice.AccrualID).Return(d.accrual, nil)
	f.leaseRepo.On("FindByID", ctx, d.accrual.LeaseID).Return(d.lease, nil)
	f.paymentRepo.On("FindByInvoice", ctx, d.invoice.ID).Return(payments, nil)
}

func TestComputeAging(t *testing.T) {
	ctx := context.Background()

	t.Run("splits outstanding debt into buckets by days overdue", func(t *testing.T) {
		f := newArrearsFixture()
		// Due April 10th, asOf April 25th: 15 days overdue
		debt := newDebt(t, "1200.00", "0.1")
		f.invoiceRepo.On("FindDatedWithin", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]billing.Invoice{debt.invoice}, nil)
		debt.expectWalk(ctx, f, nil)

		resp, err := f.service.ComputeAging(ctx, AgingRequest{})
		require.NoError(t, err)

		require.Len(t, resp.Rows, 1)
		row := resp.Rows[0]
		assert.Equal(t, debt.lease.TenantID, row.TenantID)
		assert.Equal(t, "1200.00", row.Buckets.Days1To30.StringFixed(2))
		assert.Equal(t, "1200.00", row.Buckets.Total.StringFixed(2))
		assert.True(t, row.Buckets.Current.IsZero())
	})

	t.Run("partially paid invoices age only the remainder", func(t *testing.T) {
		f := newArrearsFixture()
		debt := newDebt(t, "1200.00", "0.1")

		paid, err := payment.NewPayment(debt.lease.TenantID, decimal.RequireFromString("700.00"), f.now, payment.SourceManual)
		require.NoError(t, err)
		require.NoError(t, paid.LinkInvoice(debt.invoice.ID))

		f.invoiceRepo.On("FindDatedWithin", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]billing.Invoice{debt.invoice}, nil)
		debt.expectWalk(ctx, f, []payment.Payment{*paid})

		resp, err := f.service.ComputeAging(ctx, AgingRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "500.00", resp.Rows[0].Buckets.Total.StringFixed(2))
	})

	t.Run("fully paid invoices drop out of the report", func(t *testing.T) {
		f := newArrearsFixture()
		debt := newDebt(t, "1200.00", "0.1")

		paid, err := payment.NewPayment(debt.lease.TenantID, decimal.RequireFromString("1200.00"), f.now, payment.SourceManual)
		require.NoError(t, err)
		require.NoError(t, paid.LinkInvoice(debt.invoice.ID))

		f.invoiceRepo.On("FindDatedWithin", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]billing.Invoice{debt.invoice}, nil)
		debt.expectWalk(ctx, f, []payment.Payment{*paid})

		resp, err := f.service.ComputeAging(ctx, AgingRequest{})
		require.NoError(t, err)
		assert.Empty(t, resp.Rows)
	})

	t.Run("debt not yet due lands in the current bucket", func(t *testing.T) {
		f := newArrearsFixture()
		debt := newDebt(t, "1200.00", "0.1")
		asOf := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)

		f.invoiceRepo.On("FindDatedWithin", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]billing.Invoice{debt.invoice}, nil)
		debt.expectWalk(ctx, f, nil)

		resp, err := f.service.ComputeAging(ctx, AgingRequest{AsOf: &asOf})
		require.NoError(t, err)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "1200.00", resp.Rows[0].Buckets.Current.StringFixed(2))
		assert.True(t, resp.Rows[0].Buckets.Days1To30.IsZero())
	})
}

func TestPenaltyRuns(t *testing.T) {
	ctx := context.Background()

	t.Run("preview computes but persists nothing", func(t *testing.T) {
		f := newArrearsFixture()
		debt := newDebt(t, "1200.00", "0.1")

		f.invoiceRepo.On("FindDatedWithin", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]billing.Invoice{debt.invoice}, nil)
		debt.expectWalk(ctx, f, nil)

		resp, err := f.service.PreviewPenalties(ctx, PenaltyRunRequest{})
		require.NoError(t, err)

		// 1200.00 * 0.1% * 15 days = 18.00
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "18.00", resp.Total.StringFixed(2))
		require.Len(t, resp.Items, 1)
		assert.Nil(t, resp.Items[0].ID)
		assert.Equal(t, 15, resp.Items[0].Days)
		f.penaltyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		f.penaltyRepo.AssertNotCalled(t, "DeleteByWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("run replaces the previous figure for the same window", func(t *testing.T) {
		f := newArrearsFixture()
		debt := newDebt(t, "1200.00", "0.1")
		windowFrom := time.Date(2025, time.April, 11, 0, 0, 0, 0, time.UTC)
		windowTo := time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC)

		f.invoiceRepo.On("FindDatedWithin", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]billing.Invoice{debt.invoice}, nil)
		debt.expectWalk(ctx, f, nil)
		f.penaltyRepo.On("DeleteByWindow", ctx, debt.lease.ID, windowFrom, windowTo).Return(nil)
		f.penaltyRepo.On("Save", ctx, mock.MatchedBy(func(p *arrears.Penalty) bool {
			return p.Amount.StringFixed(2) == "18.00" && p.Days == 15
		})).Return(nil)

		resp, err := f.service.RunPenalties(ctx, PenaltyRunRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Items, 1)
		assert.NotNil(t, resp.Items[0].ID)
		f.penaltyRepo.AssertExpectations(t)
	})

	t.Run("zero penalty rate accrues nothing", func(t *testing.T) {
		f := newArrearsFixture()
		debt := newDebt(t, "1200.00", "0")

		f.invoiceRepo.On("FindDatedWithin", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]billing.Invoice{debt.invoice}, nil)
		debt.expectWalk(ctx, f, nil)

		resp, err := f.service.RunPenalties(ctx, PenaltyRunRequest{})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Count)
		f.penaltyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("debt not yet due accrues nothing", func(t *testing.T) {
		f := newArrearsFixture()
		debt := newDebt(t, "1200.00", "0.1")
		asOf := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

		f.invoiceRepo.On("FindDatedWithin", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]billing.Invoice{debt.invoice}, nil)
		debt.expectWalk(ctx, f, nil)

		resp, err := f.service.RunPenalties(ctx, PenaltyRunRequest{AsOf: &asOf})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Count)
	})
}

func TestListPenalties(t *testing.T) {
	ctx := context.Background()

	t.Run("maps recorded penalties", func(t *testing.T) {
		f := newArrearsFixture()
		leaseID := uuid.New()
		p, err := arrears.NewPenalty(leaseID,
			time.Date(2025, time.April, 11, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC),
			decimal.RequireFromString("1200.00"), decimal.RequireFromString("0.1"),
			15, decimal.RequireFromString("18.00"))
		require.NoError(t, err)

		f.penaltyRepo.On("FindAll", ctx, mock.AnythingOfType("arrears.PenaltyFilter")).
			Return([]arrears.Penalty{*p}, nil)

		items, err := f.service.ListPenalties(ctx, PenaltyListFilter{LeaseID: &leaseID})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "18.00", items[0].Amount.StringFixed(2))
	})
}
