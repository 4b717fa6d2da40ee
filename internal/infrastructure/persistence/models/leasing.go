package models

import (
	"time"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaseModel is the persistence model for the Lease aggregate root
type LeaseModel struct {
	AggregateModel
	Number            string              `gorm:"type:varchar(50);index"`
	Date              *time.Time          `gorm:"index"`
	PremiseID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	TenantID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	PeriodFrom        time.Time           `gorm:"not null"`
	PeriodTo          *time.Time          `gorm:""`
	RateBase          property.RateType   `gorm:"type:varchar(10);not null"`
	Currency          string              `gorm:"type:varchar(3);not null"`
	VATRate           *decimal.Decimal    `gorm:"type:decimal(6,2)"`
	DueDay            int                 `gorm:"not null"`
	PenaltyRatePerDay decimal.Decimal     `gorm:"type:decimal(8,4);not null"`
	Deposit           *decimal.Decimal    `gorm:"type:decimal(14,2)"`
	Status            leasing.LeaseStatus `gorm:"type:varchar(20);not null;index"`
	ReservationID     *uuid.UUID          `gorm:"type:uuid"`
	CreatedBy         *uuid.UUID          `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (LeaseModel) TableName() string {
	return "leases"
}

// ToDomain converts the persistence model to a domain Lease
func (m *LeaseModel) ToDomain() *leasing.Lease {
	return &leasing.Lease{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Number:            m.Number,
		Date:              m.Date,
		PremiseID:         m.PremiseID,
		TenantID:          m.TenantID,
		PeriodFrom:        m.PeriodFrom,
		PeriodTo:          m.PeriodTo,
		RateBase:          m.RateBase,
		Currency:          m.Currency,
		VATRate:           m.VATRate,
		DueDay:            m.DueDay,
		PenaltyRatePerDay: m.PenaltyRatePerDay,
		Deposit:           m.Deposit,
		Status:            m.Status,
		ReservationID:     m.ReservationID,
		CreatedBy:         m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Lease
func (m *LeaseModel) FromDomain(l *leasing.Lease) {
	m.FromDomainAggregateRoot(l.BaseAggregateRoot)
	m.Number = l.Number
	m.Date = l.Date
	m.PremiseID = l.PremiseID
	m.TenantID = l.TenantID
	m.PeriodFrom = l.PeriodFrom
	m.PeriodTo = l.PeriodTo
	m.RateBase = l.RateBase
	m.Currency = l.Currency
	m.VATRate = l.VATRate
	m.DueDay = l.DueDay
	m.PenaltyRatePerDay = l.PenaltyRatePerDay
	m.Deposit = l.Deposit
	m.Status = l.Status
	m.ReservationID = l.ReservationID
	m.CreatedBy = l.CreatedBy
}

// LeaseModelFromDomain creates a persistence model from a domain Lease
func LeaseModelFromDomain(l *leasing.Lease) *LeaseModel {
	m := &LeaseModel{}
	m.FromDomain(l)
	return m
}

// IndexationModel is the persistence model for lease rate indexations.
// One entry per lease per effective date.
type IndexationModel struct {
	BaseModel
	LeaseID       uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_indexation_lease_date,priority:1"`
	Factor        decimal.Decimal `gorm:"type:decimal(10,4);not null"`
	EffectiveFrom time.Time       `gorm:"not null;uniqueIndex:idx_indexation_lease_date,priority:2"`
}

// TableName returns the table name for GORM
func (IndexationModel) TableName() string {
	return "lease_indexations"
}

// ToDomain converts the persistence model to a domain Indexation
func (m *IndexationModel) ToDomain() *leasing.Indexation {
	return &leasing.Indexation{
		BaseEntity:    m.BaseModel.ToDomain(),
		LeaseID:       m.LeaseID,
		Factor:        m.Factor,
		EffectiveFrom: m.EffectiveFrom,
	}
}

// FromDomain populates the persistence model from a domain Indexation
func (m *IndexationModel) FromDomain(ix *leasing.Indexation) {
	m.FromDomainBaseEntity(ix.BaseEntity)
	m.LeaseID = ix.LeaseID
	m.Factor = ix.Factor
	m.EffectiveFrom = ix.EffectiveFrom
}

// IndexationModelFromDomain creates a persistence model from a domain Indexation
func IndexationModelFromDomain(ix *leasing.Indexation) *IndexationModel {
	m := &IndexationModel{}
	m.FromDomain(ix)
	return m
}
