package models

import (
	"time"

	"github.com/arenda/backend/internal/domain/arrears"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PenaltyModel is the persistence model for late-payment penalties. The
// unique window index lets a rerun replace the previous figure.
type PenaltyModel struct {
	AggregateModel
	LeaseID    uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_penalty_lease_window,priority:1"`
	PeriodFrom time.Time       `gorm:"not null;uniqueIndex:idx_penalty_lease_window,priority:2"`
	PeriodTo   time.Time       `gorm:"not null;uniqueIndex:idx_penalty_lease_window,priority:3"`
	Base       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	RatePerDay decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	Days       int             `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName returns the table name for GORM
func (PenaltyModel) TableName() string {
	return "penalties"
}

// ToDomain converts the persistence model to a domain Penalty
func (m *PenaltyModel) ToDomain() *arrears.Penalty {
	return &arrears.Penalty{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		LeaseID:           m.LeaseID,
		PeriodFrom:        m.PeriodFrom,
		PeriodTo:          m.PeriodTo,
		Base:              m.Base,
		RatePerDay:        m.RatePerDay,
		Days:              m.Days,
		Amount:            m.Amount,
	}
}

// FromDomain populates the persistence model from a domain Penalty
func (m *PenaltyModel) FromDomain(p *arrears.Penalty) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.LeaseID = p.LeaseID
	m.PeriodFrom = p.PeriodFrom
	m.PeriodTo = p.PeriodTo
	m.Base = p.Base
	m.RatePerDay = p.RatePerDay
	m.Days = p.Days
	m.Amount = p.Amount
}

// PenaltyModelFromDomain creates a persistence model from a domain Penalty
func PenaltyModelFromDomain(p *arrears.Penalty) *PenaltyModel {
	m := &PenaltyModel{}
	m.FromDomain(p)
	return m
}
