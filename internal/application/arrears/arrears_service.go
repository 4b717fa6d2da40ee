package arrears

import (
	"context"
	"sort"
	"time"

	"github.com/arenda/backend/internal/domain/arrears"
	"github.com/arenda/backend/internal/domain/payment"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ArrearsService computes the aging report and late-payment penalties.
// Both walk the same debt positions: for every invoice, the outstanding
// amount is the accrual total minus non-refunded linked payments, and the
// due date comes from the lease's due day within the billed month.
type ArrearsService struct {
	txScope TransactionScope
	clock   shared.Clock
	logger  *zap.Logger
}

// NewArrearsService creates a new ArrearsService
func NewArrearsService(txScope TransactionScope, clock shared.Clock, logger *zap.Logger) *ArrearsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArrearsService{
		txScope: txScope,
		clock:   clock,
		logger:  logger,
	}
}

// debtPosition is one invoice's outstanding debt at a reference instant
type debtPosition struct {
	leaseID       uuid.UUID
	tenantID      uuid.UUID
	invoiceNumber string
	outstanding   decimal.Decimal
	ratePerDay    decimal.Decimal
	window        arrears.PenaltyWindow
	overdue       bool
	daysOverdue   int
}

// ComputeAging builds the aging report as of the given instant (now when
// omitted): per tenant, outstanding amounts split into current, 1-30, 31-60,
// 61-90 and over-90-day buckets.
func (s *ArrearsService) ComputeAging(ctx context.Context, req AgingRequest) (*AgingResponse, error) {
	asOf := s.clock.Now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	var positions []debtPosition
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		positions, err = s.debtPositions(ctx, repos, asOf)
		return err
	})
	if err != nil {
		return nil, err
	}

	byTenant := make(map[uuid.UUID]*arrears.AgingBuckets)
	for _, pos := range positions {
		buckets, ok := byTenant[pos.tenantID]
		if !ok {
			b := arrears.NewAgingBuckets()
			buckets = &b
			byTenant[pos.tenantID] = buckets
		}
		buckets.Add(pos.outstanding, pos.daysOverdue)
	}

	rows := make([]arrears.TenantAging, 0, len(byTenant))
	for tenantID, buckets := range byTenant {
		rows = append(rows, arrears.TenantAging{TenantID: tenantID, Buckets: *buckets})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Buckets.Total.GreaterThan(rows[j].Buckets.Total)
	})

	return &AgingResponse{AsOf: asOf, Rows: rows}, nil
}

// PreviewPenalties computes penalties as of the given instant without
// recording anything
func (s *ArrearsService) PreviewPenalties(ctx context.Context, req PenaltyRunRequest) (*PenaltyRunResponse, error) {
	return s.runPenalties(ctx, req, false)
}

// RunPenalties computes penalties and records them. Rerunning for the same
// reference date replaces the previous figures for each (lease, window).
func (s *ArrearsService) RunPenalties(ctx context.Context, req PenaltyRunRequest) (*PenaltyRunResponse, error) {
	return s.runPenalties(ctx, req, true)
}

func (s *ArrearsService) runPenalties(ctx context.Context, req PenaltyRunRequest, persist bool) (*PenaltyRunResponse, error) {
	asOf := s.clock.Now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	resp := &PenaltyRunResponse{
		AsOf:    asOf,
		Total:   decimal.Zero,
		Items:   make([]PenaltyItem, 0),
		Persist: persist,
	}

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		positions, err := s.debtPositions(ctx, repos, asOf)
		if err != nil {
			return err
		}

		for _, pos := range positions {
			if !pos.overdue || pos.ratePerDay.LessThanOrEqual(decimal.Zero) {
				continue
			}
			amount := arrears.PenaltyAmount(pos.outstanding, pos.ratePerDay, pos.window.Days)
			if amount.LessThanOrEqual(decimal.Zero) {
				continue
			}

			item := PenaltyItem{
				LeaseID:       pos.leaseID,
				InvoiceNumber: pos.invoiceNumber,
				PeriodFrom:    pos.window.From,
				PeriodTo:      pos.window.To,
				Base:          pos.outstanding,
				RatePerDay:    pos.ratePerDay,
				Days:          pos.window.Days,
				Amount:        amount,
			}

			if persist {
				penalty, err := arrears.NewPenalty(pos.leaseID, pos.window.From, pos.window.To, pos.outstanding, pos.ratePerDay, pos.window.Days, amount)
				if err != nil {
					return err
				}
				if err := repos.PenaltyRepo().DeleteByWindow(ctx, pos.leaseID, pos.window.From, pos.window.To); err != nil {
					return err
				}
				if err := repos.PenaltyRepo().Save(ctx, penalty); err != nil {
					return err
				}
				item.ID = &penalty.ID
			}

			resp.Count++
			resp.Total = resp.Total.Add(amount)
			resp.Items = append(resp.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if persist {
		s.logger.Info("penalty run finished",
			zap.Time("as_of", asOf),
			zap.Int("count", resp.Count),
			zap.String("total", resp.Total.String()),
		)
	}
	return resp, nil
}

// ListPenalties retrieves recorded penalties matching the filter
func (s *ArrearsService) ListPenalties(ctx context.Context, filter PenaltyListFilter) ([]PenaltyItem, error) {
	domainFilter := arrears.PenaltyFilter{
		LeaseID: filter.LeaseID,
		From:    filter.From,
		To:      filter.To,
		Limit:   filter.PageSize,
	}
	if filter.PageSize > 0 && filter.Page > 1 {
		domainFilter.Offset = (filter.Page - 1) * filter.PageSize
	}

	var penalties []arrears.Penalty
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		penalties, err = repos.PenaltyRepo().FindAll(ctx, domainFilter)
		return err
	})
	if err != nil {
		return nil, err
	}

	items := make([]PenaltyItem, 0, len(penalties))
	for i := range penalties {
		items = append(items, ToPenaltyItem(&penalties[i]))
	}
	return items, nil
}

// debtPositions walks every invoice and keeps those with a positive
// outstanding amount, annotated with overdue window data. Aging and
// penalties always agree because both consume this one computation.
func (s *ArrearsService) debtPositions(ctx context.Context, repos TransactionalRepositories, asOf time.Time) ([]debtPosition, error) {
	// Invoices issued after the as-of date do not exist for this report.
	invoices, err := repos.InvoiceRepo().FindDatedWithin(ctx, time.Time{}, asOf)
	if err != nil {
		return nil, err
	}

	positions := make([]debtPosition, 0)
	for i := range invoices {
		invoice := &invoices[i]

		accrual, err := repos.AccrualRepo().FindByID(ctx, invoice.AccrualID)
		if err != nil {
			return nil, err
		}
		lease, err := repos.LeaseRepo().FindByID(ctx, accrual.LeaseID)
		if err != nil {
			return nil, err
		}
		payments, err := repos.PaymentRepo().FindByInvoice(ctx, invoice.ID)
		if err != nil {
			return nil, err
		}

		outstanding := accrual.Total.Sub(payment.PaidTotal(payments)).Round(2)
		if outstanding.LessThanOrEqual(decimal.Zero) {
			continue
		}

		due := accrual.DueDate(lease.DueDay)
		pos := debtPosition{
			leaseID:       lease.ID,
			tenantID:      lease.TenantID,
			invoiceNumber: invoice.Number,
			outstanding:   outstanding,
			ratePerDay:    lease.PenaltyRatePerDay,
			daysOverdue:   arrears.DaysBetween(due, asOf),
		}
		if window, ok := arrears.WindowFor(due, asOf); ok {
			pos.overdue = true
			pos.window = window
		}
		positions = append(positions, pos)
	}
	return positions, nil
}
