package property

import (
	"time"

	"github.com/arenda/backend/internal/domain/property"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PremiseResponse represents a premise in API responses
type PremiseResponse struct {
	ID            uuid.UUID              `json:"id"`
	Code          string                 `json:"code"`
	Type          property.PremiseType   `json:"type"`
	Address       string                 `json:"address"`
	Floor         *int                   `json:"floor,omitempty"`
	Area          decimal.Decimal        `json:"area"`
	RateType      property.RateType      `json:"rate_type"`
	BaseRate      decimal.Decimal        `json:"base_rate"`
	Status        property.PremiseStatus `json:"status"`
	AvailableFrom *time.Time             `json:"available_from,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	Version       int                    `json:"version"`
}

// ToPremiseResponse maps a premise aggregate to its response form
func ToPremiseResponse(p *property.Premise) PremiseResponse {
	return PremiseResponse{
		ID:            p.ID,
		Code:          p.Code,
		Type:          p.Type,
		Address:       p.Address,
		Floor:         p.Floor,
		Area:          p.Area,
		RateType:      p.RateType,
		BaseRate:      p.BaseRate,
		Status:        p.Status,
		AvailableFrom: p.AvailableFrom,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

// CreatePremiseRequest represents a request to register a premise
type CreatePremiseRequest struct {
	Code          string          `json:"code"`
	Type          string          `json:"type" binding:"required,oneof=OFFICE RETAIL WAREHOUSE OTHER"`
	Address       string          `json:"address" binding:"required"`
	Floor         *int            `json:"floor"`
	Area          decimal.Decimal `json:"area" binding:"required"`
	RateType      string          `json:"rate_type" binding:"required,oneof=M2 FIXED"`
	BaseRate      decimal.Decimal `json:"base_rate" binding:"required"`
	AvailableFrom *time.Time      `json:"available_from"`
}

// UpdatePremiseRequest represents a request to update premise attributes
type UpdatePremiseRequest struct {
	Type          string          `json:"type" binding:"required,oneof=OFFICE RETAIL WAREHOUSE OTHER"`
	Address       string          `json:"address" binding:"required"`
	Floor         *int            `json:"floor"`
	Area          decimal.Decimal `json:"area" binding:"required"`
	RateType      string          `json:"rate_type" binding:"required,oneof=M2 FIXED"`
	BaseRate      decimal.Decimal `json:"base_rate" binding:"required"`
	AvailableFrom *time.Time      `json:"available_from"`
}

// PremiseListFilter represents filter options for the premise list
type PremiseListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=OFFICE RETAIL WAREHOUSE OTHER"`
	Status   string `form:"status" binding:"omitempty,oneof=FREE RESERVED RENTED"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ImportPremiseRow is one row of a bulk premise import
type ImportPremiseRow struct {
	Code          string          `json:"code"`
	Type          string          `json:"type" binding:"required,oneof=OFFICE RETAIL WAREHOUSE OTHER"`
	Address       string          `json:"address" binding:"required"`
	Floor         *int            `json:"floor"`
	Area          decimal.Decimal `json:"area" binding:"required"`
	RateType      string          `json:"rate_type" binding:"required,oneof=M2 FIXED"`
	BaseRate      decimal.Decimal `json:"base_rate" binding:"required"`
	AvailableFrom *time.Time      `json:"available_from"`
}

// ImportPremisesRequest represents a bulk premise import
type ImportPremisesRequest struct {
	Rows []ImportPremiseRow `json:"rows" binding:"required,min=1,dive"`
}

// ImportRowResult reports the outcome for one imported row
type ImportRowResult struct {
	Code      string     `json:"code"`
	PremiseID *uuid.UUID `json:"premise_id,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// ImportPremisesResponse summarizes a bulk import run
type ImportPremisesResponse struct {
	Imported int               `json:"imported"`
	Failed   int               `json:"failed"`
	Results  []ImportRowResult `json:"results"`
}

// ReservationResponse represents a reservation in API responses
type ReservationResponse struct {
	ID        uuid.UUID                  `json:"id"`
	PremiseID uuid.UUID                  `json:"premise_id"`
	Until     time.Time                  `json:"until"`
	Status    property.ReservationStatus `json:"status"`
	CreatedBy *uuid.UUID                 `json:"created_by,omitempty"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// ToReservationResponse maps a reservation aggregate to its response form
func ToReservationResponse(r *property.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		PremiseID: r.PremiseID,
		Until:     r.Until,
		Status:    r.Status,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreateReservationRequest represents a request to hold a premise
type CreateReservationRequest struct {
	PremiseID uuid.UUID  `json:"premise_id" binding:"required"`
	Until     time.Time  `json:"until" binding:"required"`
	CreatedBy *uuid.UUID `json:"created_by"`
}

// ReservationListFilter represents filter options for the reservation list
type ReservationListFilter struct {
	PremiseID *uuid.UUID `form:"premise_id"`
	Status    string     `form:"status" binding:"omitempty,oneof=ACTIVE EXPIRED CANCELLED"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ExpireReservationsResponse summarizes a reservation expiry sweep
type ExpireReservationsResponse struct {
	Expired int         `json:"expired"`
	Freed   []uuid.UUID `json:"freed_premises"`
}
