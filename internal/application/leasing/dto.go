package leasing

import (
	"time"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaseResponse represents a lease contract in API responses
type LeaseResponse struct {
	ID                uuid.UUID           `json:"id"`
	Number            string              `json:"number,omitempty"`
	Date              *time.Time          `json:"date,omitempty"`
	PremiseID         uuid.UUID           `json:"premise_id"`
	TenantID          uuid.UUID           `json:"tenant_id"`
	PeriodFrom        time.Time           `json:"period_from"`
	PeriodTo          *time.Time          `json:"period_to,omitempty"`
	RateBase          string              `json:"rate_base"`
	Currency          string              `json:"currency"`
	VATRate           *decimal.Decimal    `json:"vat_rate,omitempty"`
	DueDay            int                 `json:"due_day"`
	PenaltyRatePerDay decimal.Decimal     `json:"penalty_rate_per_day"`
	Deposit           *decimal.Decimal    `json:"deposit,omitempty"`
	Status            leasing.LeaseStatus `json:"status"`
	ReservationID     *uuid.UUID          `json:"reservation_id,omitempty"`
	CreatedBy         *uuid.UUID          `json:"created_by,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Version           int                 `json:"version"`
}

// ToLeaseResponse maps a lease aggregate to its response form
func ToLeaseResponse(l *leasing.Lease) LeaseResponse {
	return LeaseResponse{
		ID:                l.ID,
		Number:            l.Number,
		Date:              l.Date,
		PremiseID:         l.PremiseID,
		TenantID:          l.TenantID,
		PeriodFrom:        l.PeriodFrom,
		PeriodTo:          l.PeriodTo,
		RateBase:          string(l.RateBase),
		Currency:          l.Currency,
		VATRate:           l.VATRate,
		DueDay:            l.DueDay,
		PenaltyRatePerDay: l.PenaltyRatePerDay,
		Deposit:           l.Deposit,
		Status:            l.Status,
		ReservationID:     l.ReservationID,
		CreatedBy:         l.CreatedBy,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
		Version:           l.Version,
	}
}

// CreateLeaseRequest represents a request to draft a lease contract
type CreateLeaseRequest struct {
	PremiseID         uuid.UUID        `json:"premise_id" binding:"required"`
	TenantID          uuid.UUID        `json:"tenant_id" binding:"required"`
	PeriodFrom        time.Time        `json:"period_from" binding:"required"`
	PeriodTo          *time.Time       `json:"period_to"`
	RateBase          string           `json:"rate_base" binding:"required,oneof=M2 FIXED"`
	Currency          string           `json:"currency" binding:"omitempty,oneof=BYN USD EUR RUB PLN"`
	VATRate           *decimal.Decimal `json:"vat_rate"`
	DueDay            int              `json:"due_day" binding:"required,min=1,max=28"`
	PenaltyRatePerDay decimal.Decimal  `json:"penalty_rate_per_day"`
	Deposit           *decimal.Decimal `json:"deposit"`
	ReservationID     *uuid.UUID       `json:"reservation_id"`
	CreatedBy         *uuid.UUID       `json:"created_by"`
}

// UpdateLeaseRequest represents a request to change contract terms
type UpdateLeaseRequest struct {
	PremiseID         uuid.UUID        `json:"premise_id" binding:"required"`
	TenantID          uuid.UUID        `json:"tenant_id" binding:"required"`
	PeriodFrom        time.Time        `json:"period_from" binding:"required"`
	PeriodTo          *time.Time       `json:"period_to"`
	RateBase          string           `json:"rate_base" binding:"required,oneof=M2 FIXED"`
	Currency          string           `json:"currency" binding:"omitempty,oneof=BYN USD EUR RUB PLN"`
	VATRate           *decimal.Decimal `json:"vat_rate"`
	DueDay            int              `json:"due_day" binding:"required,min=1,max=28"`
	PenaltyRatePerDay decimal.Decimal  `json:"penalty_rate_per_day"`
	Deposit           *decimal.Decimal `json:"deposit"`
}

// LeaseListFilter represents filter options for the lease list
type LeaseListFilter struct {
	Search    string     `form:"search"`
	Status    string     `form:"status" binding:"omitempty,oneof=DRAFT ACTIVE TERMINATING CLOSED"`
	PremiseID *uuid.UUID `form:"premise_id"`
	TenantID  *uuid.UUID `form:"tenant_id"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// IndexationResponse represents a rate indexation in API responses
type IndexationResponse struct {
	ID            uuid.UUID       `json:"id"`
	LeaseID       uuid.UUID       `json:"lease_id"`
	Factor        decimal.Decimal `json:"factor"`
	EffectiveFrom time.Time       `json:"effective_from"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToIndexationResponse maps an indexation entity to its response form
func ToIndexationResponse(ix *leasing.Indexation) IndexationResponse {
	return IndexationResponse{
		ID:            ix.ID,
		LeaseID:       ix.LeaseID,
		Factor:        ix.Factor,
		EffectiveFrom: ix.EffectiveFrom,
		CreatedAt:     ix.CreatedAt,
	}
}

// AddIndexationRequest represents a request to record a rate multiplier
type AddIndexationRequest struct {
	Factor        decimal.Decimal `json:"factor" binding:"required"`
	EffectiveFrom time.Time       `json:"effective_from" binding:"required"`
}
