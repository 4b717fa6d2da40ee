package models

import (
	"time"

	"github.com/arenda/backend/internal/domain/property"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PremiseModel is the persistence model for the Premise aggregate root
type PremiseModel struct {
	AggregateModel
	Code          string                 `gorm:"type:varchar(50);not null;uniqueIndex"`
	Type          property.PremiseType   `gorm:"type:varchar(20);not null;index"`
	Address       string                 `gorm:"type:varchar(500);not null"`
	Floor         *int                   `gorm:""`
	Area          decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	RateType      property.RateType      `gorm:"type:varchar(10);not null"`
	BaseRate      decimal.Decimal        `gorm:"type:decimal(14,4);not null"`
	Status        property.PremiseStatus `gorm:"type:varchar(20);not null;index"`
	AvailableFrom *time.Time             `gorm:"index"`
}

// TableName returns the table name for GORM
func (PremiseModel) TableName() string {
	return "premises"
}

// ToDomain converts the persistence model to a domain Premise
func (m *PremiseModel) ToDomain() *property.Premise {
	return &property.Premise{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Type:              m.Type,
		Address:           m.Address,
		Floor:             m.Floor,
		Area:              m.Area,
		RateType:          m.RateType,
		BaseRate:          m.BaseRate,
		Status:            m.Status,
		AvailableFrom:     m.AvailableFrom,
	}
}

// FromDomain populates the persistence model from a domain Premise
func (m *PremiseModel) FromDomain(p *property.Premise) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Code = p.Code
	m.Type = p.Type
	m.Address = p.Address
	m.Floor = p.Floor
	m.Area = p.Area
	m.RateType = p.RateType
	m.BaseRate = p.BaseRate
	m.Status = p.Status
	m.AvailableFrom = p.AvailableFrom
}

// PremiseModelFromDomain creates a persistence model from a domain Premise
func PremiseModelFromDomain(p *property.Premise) *PremiseModel {
	m := &PremiseModel{}
	m.FromDomain(p)
	return m
}

// ReservationModel is the persistence model for the Reservation aggregate root
type ReservationModel struct {
	AggregateModel
	PremiseID uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Until     time.Time                  `gorm:"not null;index"`
	Status    property.ReservationStatus `gorm:"type:varchar(20);not null;index"`
	CreatedBy *uuid.UUID                 `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (ReservationModel) TableName() string {
	return "reservations"
}

// ToDomain converts the persistence model to a domain Reservation
func (m *ReservationModel) ToDomain() *property.Reservation {
	return &property.Reservation{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PremiseID:         m.PremiseID,
		Until:             m.Until,
		Status:            m.Status,
		CreatedBy:         m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Reservation
func (m *ReservationModel) FromDomain(r *property.Reservation) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.PremiseID = r.PremiseID
	m.Until = r.Until
	m.Status = r.Status
	m.CreatedBy = r.CreatedBy
}

// ReservationModelFromDomain creates a persistence model from a domain Reservation
func ReservationModelFromDomain(r *property.Reservation) *ReservationModel {
	m := &ReservationModel{}
	m.FromDomain(r)
	return m
}
