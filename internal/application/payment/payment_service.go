package payment

import (
	"context"
	"errors"

	"github.com/arenda/backend/internal/domain/payment"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/domain/tenant"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService records incoming payments and reconciles them against
// invoices. An invoice's payment status is never stored authoritatively by
// this service; it is recomputed from the accrual total and the non-refunded
// linked payments on every change.
type PaymentService struct {
	txScope        TransactionScope
	tenantRepo     tenant.Repository
	clock          shared.Clock
	logger         *zap.Logger
	eventPublisher shared.EventPublisher
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(txScope TransactionScope, tenantRepo tenant.Repository, clock shared.Clock, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		txScope:    txScope,
		tenantRepo: tenantRepo,
		clock:      clock,
		logger:     logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PaymentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *PaymentService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// Create records a payment. With an invoice number the service attempts
// reconciliation at once: a match of the same tenant links the payment, a
// mismatch or unknown number leaves it UNRESOLVED, no number leaves it
// PENDING.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	if _, err := s.tenantRepo.FindByID(ctx, req.TenantID); err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	var p *payment.Payment
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		p, err = payment.NewPayment(req.TenantID, req.Amount, date, payment.Source(req.Source))
		if err != nil {
			return err
		}
		if req.InvoiceNumber != "" {
			if err := s.reconcile(ctx, repos, p, req.InvoiceNumber); err != nil {
				return err
			}
		}
		return repos.PaymentRepo().Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, payment.NewPaymentReceivedEvent(p))
	if p.Status == payment.StatusApplied && p.LinkedInvoiceID != nil {
		s.publish(ctx, payment.NewPaymentAppliedEvent(p, *p.LinkedInvoiceID))
	}

	resp := ToPaymentResponse(p)
	return &resp, nil
}

// Apply re-attempts reconciliation of a PENDING or UNRESOLVED payment
// against the given invoice number
func (s *PaymentService) Apply(ctx context.Context, id uuid.UUID, req ApplyPaymentRequest) (*PaymentResponse, error) {
	var p *payment.Payment
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		p, err = repos.PaymentRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status == payment.StatusApplied {
			return shared.NewDomainError("INVALID_STATE", "Payment is already applied")
		}
		if err := s.reconcile(ctx, repos, p, req.InvoiceNumber); err != nil {
			return err
		}
		return repos.PaymentRepo().Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	if p.Status == payment.StatusApplied && p.LinkedInvoiceID != nil {
		s.publish(ctx, payment.NewPaymentAppliedEvent(p, *p.LinkedInvoiceID))
	}

	resp := ToPaymentResponse(p)
	return &resp, nil
}

// Refund marks a payment REFUNDED and recomputes the linked invoice's
// status without the refunded amount
func (s *PaymentService) Refund(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	var p *payment.Payment
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		p, err = repos.PaymentRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		linkedInvoiceID := p.LinkedInvoiceID
		if err := p.Refund(); err != nil {
			return err
		}
		if err := repos.PaymentRepo().Save(ctx, p); err != nil {
			return err
		}
		if linkedInvoiceID != nil {
			return s.recomputeInvoiceStatus(ctx, repos, *linkedInvoiceID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, payment.NewPaymentRefundedEvent(p))

	resp := ToPaymentResponse(p)
	return &resp, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	var p *payment.Payment
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		p, err = repos.PaymentRepo().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToPaymentResponse(p)
	return &resp, nil
}

// List retrieves payments matching the filter
func (s *PaymentService) List(ctx context.Context, filter PaymentListFilter) ([]PaymentResponse, error) {
	domainFilter := payment.Filter{
		TenantID: filter.TenantID,
		DateFrom: filter.DateFrom,
		DateTo:   filter.DateTo,
		Limit:    filter.PageSize,
	}
	if filter.Status != "" {
		status := payment.Status(filter.Status)
		domainFilter.Status = &status
	}
	if filter.Source != "" {
		source := payment.Source(filter.Source)
		domainFilter.Source = &source
	}
	if filter.PageSize > 0 && filter.Page > 1 {
		domainFilter.Offset = (filter.Page - 1) * filter.PageSize
	}

	var payments []payment.Payment
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		payments, err = repos.PaymentRepo().FindAll(ctx, domainFilter)
		return err
	})
	if err != nil {
		return nil, err
	}

	items := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, ToPaymentResponse(&payments[i]))
	}
	return items, nil
}

// ListByLease retrieves payments linked to any invoice of the lease
func (s *PaymentService) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]PaymentResponse, error) {
	var payments []payment.Payment
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.LeaseRepo().FindByID(ctx, leaseID); err != nil {
			return err
		}
		var err error
		payments, err = repos.PaymentRepo().FindByLease(ctx, leaseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, ToPaymentResponse(&payments[i]))
	}
	return items, nil
}

// Import records payments from a bank statement in bulk. Tenants resolve by
// tax identifier; rows fail independently.
func (s *PaymentService) Import(ctx context.Context, req ImportPaymentsRequest) (*ImportPaymentsResponse, error) {
	resp := &ImportPaymentsResponse{Results: make([]ImportRowResult, 0, len(req.Rows))}
	for _, row := range req.Rows {
		t, err := s.tenantRepo.FindByUNP(ctx, row.TenantUNP)
		if err != nil {
			resp.Failed++
			resp.Results = append(resp.Results, ImportRowResult{TenantUNP: row.TenantUNP, Error: err.Error()})
			continue
		}
		created, err := s.Create(ctx, CreatePaymentRequest{
			TenantID:      t.ID,
			Amount:        row.Amount,
			Date:          row.Date,
			InvoiceNumber: row.InvoiceNumber,
			Source:        string(payment.SourceImport),
		})
		if err != nil {
			resp.Failed++
			resp.Results = append(resp.Results, ImportRowResult{TenantUNP: row.TenantUNP, Error: err.Error()})
			continue
		}
		resp.Imported++
		resp.Results = append(resp.Results, ImportRowResult{
			TenantUNP: row.TenantUNP,
			PaymentID: &created.ID,
			Status:    created.Status,
		})
	}
	return resp, nil
}

// reconcile links the payment to the invoice with the given number when it
// belongs to the same tenant, and refreshes that invoice's status. Unknown
// numbers and tenant mismatches leave the payment UNRESOLVED.
func (s *PaymentService) reconcile(ctx context.Context, repos TransactionalRepositories, p *payment.Payment, invoiceNumber string) error {
	invoice, err := repos.InvoiceRepo().FindByNumber(ctx, invoiceNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Info("payment references unknown invoice",
				zap.String("invoice_number", invoiceNumber),
				zap.String("tenant_id", p.TenantID.String()),
			)
			return p.MarkUnresolved()
		}
		return err
	}

	accrual, err := repos.AccrualRepo().FindByID(ctx, invoice.AccrualID)
	if err != nil {
		return err
	}
	lease, err := repos.LeaseRepo().FindByID(ctx, accrual.LeaseID)
	if err != nil {
		return err
	}
	if lease.TenantID != p.TenantID {
		s.logger.Info("payment tenant does not own the invoice",
			zap.String("invoice_number", invoiceNumber),
			zap.String("tenant_id", p.TenantID.String()),
		)
		return p.MarkUnresolved()
	}

	if err := p.LinkInvoice(invoice.ID); err != nil {
		return err
	}

	payments, err := repos.PaymentRepo().FindByInvoice(ctx, invoice.ID)
	if err != nil {
		return err
	}
	// The payment being linked is not persisted yet on first reconciliation
	found := false
	for i := range payments {
		if payments[i].ID == p.ID {
			found = true
			break
		}
	}
	if !found {
		payments = append(payments, *p)
	}

	status := payment.DeriveInvoiceStatus(accrual.Total, payments)
	if status != invoice.Status {
		if err := invoice.SetStatus(status); err != nil {
			return err
		}
		return repos.InvoiceRepo().Save(ctx, invoice)
	}
	return nil
}

// recomputeInvoiceStatus re-derives an invoice's status from its accrual
// total and currently linked payments
func (s *PaymentService) recomputeInvoiceStatus(ctx context.Context, repos TransactionalRepositories, invoiceID uuid.UUID) error {
	invoice, err := repos.InvoiceRepo().FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	accrual, err := repos.AccrualRepo().FindByID(ctx, invoice.AccrualID)
	if err != nil {
		return err
	}
	payments, err := repos.PaymentRepo().FindByInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}
	status := payment.DeriveInvoiceStatus(accrual.Total, payments)
	if status == invoice.Status {
		return nil
	}
	if err := invoice.SetStatus(status); err != nil {
		return err
	}
	return repos.InvoiceRepo().Save(ctx, invoice)
}
