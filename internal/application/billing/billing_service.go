package billing

import (
	"context"
	"errors"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BillingService generates monthly accruals and invoices and manages VAT
// settings. A run is idempotent per period: leases already billed are
// skipped, and each lease is billed inside its own transaction so a failure
// on one never blocks the rest.
type BillingService struct {
	txScope        TransactionScope
	clock          shared.Clock
	logger         *zap.Logger
	eventPublisher shared.EventPublisher
}

// NewBillingService creates a new BillingService
func NewBillingService(txScope TransactionScope, clock shared.Clock, logger *zap.Logger) *BillingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingService{
		txScope: txScope,
		clock:   clock,
		logger:  logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *BillingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *BillingService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// Run bills every eligible lease for the given period. A lease is eligible
// when it is ACTIVE and its contract period overlaps the billing month.
func (s *BillingService) Run(ctx context.Context, req RunRequest) (*RunResponse, error) {
	period, err := billing.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	var leases []leasing.Lease
	var seq int64
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		leases, err = repos.LeaseRepo().FindActiveInPeriod(ctx, period.Start(), period.End())
		if err != nil {
			return err
		}
		// Existing accruals anchor the invoice sequence for the period:
		// a rerun continues numbering where the previous run stopped.
		existing, err := repos.AccrualRepo().FindByPeriod(ctx, period)
		if err != nil {
			return err
		}
		seq = int64(len(existing))
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &RunResponse{
		Period:  period.String(),
		Results: make([]RunLeaseResult, 0, len(leases)),
	}
	for i := range leases {
		lease := &leases[i]
		resp.Processed++

		result, created := s.billLease(ctx, lease, period, seq+1)
		if created {
			seq++
			resp.Created++
		} else if result.Status == RunResultSkipped {
			resp.Skipped++
		} else {
			resp.Failed++
		}
		resp.Results = append(resp.Results, result)
	}

	s.logger.Info("billing run finished",
		zap.String("period", period.String()),
		zap.Int("processed", resp.Processed),
		zap.Int("created", resp.Created),
		zap.Int("skipped", resp.Skipped),
		zap.Int("failed", resp.Failed),
	)
	return resp, nil
}

// billLease creates the accrual and invoice for one lease inside one
// transaction. Returns the per-lease result and whether an invoice was
// actually created.
func (s *BillingService) billLease(ctx context.Context, lease *leasing.Lease, period billing.Period, seq int64) (RunLeaseResult, bool) {
	result := RunLeaseResult{LeaseID: lease.ID}

	var issued *billing.InvoiceIssuedEvent
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.AccrualRepo().FindByLeaseAndPeriod(ctx, lease.ID, period)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if existing != nil {
			result.Status = RunResultSkipped
			result.AccrualID = &existing.ID
			return nil
		}

		premise, err := repos.PremiseRepo().FindByID(ctx, lease.PremiseID)
		if err != nil {
			return err
		}
		indexations, err := repos.IndexationRepo().FindByLease(ctx, lease.ID)
		if err != nil {
			return err
		}

		rate := leasing.EffectiveRate(premise.BaseRate, indexations, period.Start())

		vatRate := billing.DefaultVATRatePercent
		if lease.VATRate != nil {
			vatRate = *lease.VATRate
		} else {
			settings, err := repos.VATSettingRepo().FindForDate(ctx, period.Start())
			if err != nil {
				return err
			}
			vatRate = billing.ResolveVATRate(settings, period.Start())
		}

		charge, err := billing.ComputeCharge(lease.RateBase, premise.Area, rate, vatRate)
		if err != nil {
			return err
		}

		accrual, err := billing.NewAccrual(lease.ID, period, charge)
		if err != nil {
			return err
		}
		if err := repos.AccrualRepo().Save(ctx, accrual); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				result.Status = RunResultSkipped
				return nil
			}
			return err
		}

		invoice, err := billing.NewInvoice(accrual.ID, billing.InvoiceNumber(period, seq), s.clock.Now())
		if err != nil {
			return err
		}
		if err := repos.InvoiceRepo().Save(ctx, invoice); err != nil {
			return err
		}

		result.Status = RunResultCreated
		result.AccrualID = &accrual.ID
		result.InvoiceID = &invoice.ID
		result.InvoiceNumber = invoice.Number
		result.Total = &accrual.Total
		issued = billing.NewInvoiceIssuedEvent(invoice, accrual)
		return nil
	})
	if err != nil {
		s.logger.Warn("billing failed for lease",
			zap.String("lease_id", lease.ID.String()),
			zap.String("period", period.String()),
			zap.Error(err),
		)
		result.Status = RunResultFailed
		result.Error = err.Error()
		return result, false
	}
	if issued != nil {
		s.publish(ctx, issued)
	}
	return result, result.Status == RunResultCreated
}

// ListAccrualsByPeriod retrieves all accruals for a billing period
func (s *BillingService) ListAccrualsByPeriod(ctx context.Context, periodStr string) ([]AccrualResponse, error) {
	period, err := billing.ParsePeriod(periodStr)
	if err != nil {
		return nil, err
	}
	var accruals []billing.Accrual
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		accruals, err = repos.AccrualRepo().FindByPeriod(ctx, period)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]AccrualResponse, 0, len(accruals))
	for i := range accruals {
		items = append(items, ToAccrualResponse(&accruals[i]))
	}
	return items, nil
}

// ListLeaseAccruals retrieves the accruals of a lease, newest period first
func (s *BillingService) ListLeaseAccruals(ctx context.Context, leaseID uuid.UUID) ([]AccrualResponse, error) {
	var accruals []billing.Accrual
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.LeaseRepo().FindByID(ctx, leaseID); err != nil {
			return err
		}
		var err error
		accruals, err = repos.AccrualRepo().FindByLease(ctx, leaseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]AccrualResponse, 0, len(accruals))
	for i := range accruals {
		items = append(items, ToAccrualResponse(&accruals[i]))
	}
	return items, nil
}

// ListLeaseInvoices retrieves the invoices of a lease through its accruals
func (s *BillingService) ListLeaseInvoices(ctx context.Context, leaseID uuid.UUID) ([]InvoiceResponse, error) {
	var invoices []billing.Invoice
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.LeaseRepo().FindByID(ctx, leaseID); err != nil {
			return err
		}
		var err error
		invoices, err = repos.InvoiceRepo().FindByLease(ctx, leaseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, ToInvoiceResponse(&invoices[i]))
	}
	return items, nil
}

// GetInvoice retrieves an invoice by ID
func (s *BillingService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	var invoice *billing.Invoice
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		invoice, err = repos.InvoiceRepo().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// ListInvoices retrieves invoices matching the filter, with pagination
func (s *BillingService) ListInvoices(ctx context.Context, filter InvoiceListFilter) (shared.Paginated[InvoiceResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.DateFrom != nil {
		domainFilter.Filters["date_from"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		domainFilter.Filters["date_to"] = *filter.DateTo
	}

	var invoices []billing.Invoice
	var total int64
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		invoices, err = repos.InvoiceRepo().FindAll(ctx, domainFilter)
		if err != nil {
			return err
		}
		total, err = repos.InvoiceRepo().Count(ctx, domainFilter)
		return err
	})
	if err != nil {
		return shared.Paginated[InvoiceResponse]{}, err
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, ToInvoiceResponse(&invoices[i]))
	}
	return shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize), nil
}

// ListVATSettings retrieves all VAT rate entries, newest valid-from first
func (s *BillingService) ListVATSettings(ctx context.Context) ([]VATSettingResponse, error) {
	var settings []billing.VATSetting
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		settings, err = repos.VATSettingRepo().FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]VATSettingResponse, 0, len(settings))
	for i := range settings {
		items = append(items, ToVATSettingResponse(&settings[i]))
	}
	return items, nil
}

// SetVATRate records a VAT rate entry. Saving the same (rate, valid-from)
// pair twice is a no-op.
func (s *BillingService) SetVATRate(ctx context.Context, req SetVATRateRequest) (*VATSettingResponse, error) {
	var setting *billing.VATSetting
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.VATSettingRepo().FindByRateAndDate(ctx, req.Rate, req.ValidFrom)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if existing != nil {
			setting = existing
			return nil
		}
		setting, err = billing.NewVATSetting(req.Rate, req.ValidFrom)
		if err != nil {
			return err
		}
		return repos.VATSettingRepo().Save(ctx, setting)
	})
	if err != nil {
		return nil, err
	}
	resp := ToVATSettingResponse(setting)
	return &resp, nil
}
