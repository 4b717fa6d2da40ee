package arrears

import (
	"time"

	"github.com/arenda/backend/internal/domain/arrears"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AgingRequest represents a request for an aging report
type AgingRequest struct {
	AsOf *time.Time `form:"as_of"`
}

// AgingResponse is the aging report: per-tenant outstanding debt split by
// days overdue
type AgingResponse struct {
	AsOf time.Time             `json:"as_of"`
	Rows []arrears.TenantAging `json:"rows"`
}

// PenaltyItem represents one computed or recorded penalty
type PenaltyItem struct {
	ID            *uuid.UUID      `json:"id,omitempty"`
	LeaseID       uuid.UUID       `json:"lease_id"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	PeriodFrom    time.Time       `json:"period_from"`
	PeriodTo      time.Time       `json:"period_to"`
	Base          decimal.Decimal `json:"base"`
	RatePerDay    decimal.Decimal `json:"rate_per_day"`
	Days          int             `json:"days"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToPenaltyItem maps a recorded penalty to its response form
func ToPenaltyItem(p *arrears.Penalty) PenaltyItem {
	return PenaltyItem{
		ID:         &p.ID,
		LeaseID:    p.LeaseID,
		PeriodFrom: p.PeriodFrom,
		PeriodTo:   p.PeriodTo,
		Base:       p.Base,
		RatePerDay: p.RatePerDay,
		Days:       p.Days,
		Amount:     p.Amount,
	}
}

// PenaltyRunRequest represents a request to compute (and optionally record)
// late-payment penalties
type PenaltyRunRequest struct {
	AsOf *time.Time `json:"as_of"`
}

// PenaltyRunResponse summarizes a penalty computation
type PenaltyRunResponse struct {
	AsOf    time.Time       `json:"as_of"`
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
	Items   []PenaltyItem   `json:"items"`
	Persist bool            `json:"persisted"`
}

// PenaltyListFilter represents filter options for the penalty list
type PenaltyListFilter struct {
	LeaseID  *uuid.UUID `form:"lease_id"`
	From     *time.Time `form:"from"`
	To       *time.Time `form:"to"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}
