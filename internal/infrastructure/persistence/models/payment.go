package models

import (
	"time"

	"github.com/arenda/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for the Payment aggregate root
type PaymentModel struct {
	AggregateModel
	TenantID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date            time.Time       `gorm:"not null;index"`
	LinkedInvoiceID *uuid.UUID      `gorm:"type:uuid;index"`
	Status          payment.Status  `gorm:"type:varchar(20);not null;index"`
	Source          payment.Source  `gorm:"type:varchar(10);not null"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *payment.Payment {
	return &payment.Payment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		TenantID:          m.TenantID,
		Amount:            m.Amount,
		Date:              m.Date,
		LinkedInvoiceID:   m.LinkedInvoiceID,
		Status:            m.Status,
		Source:            m.Source,
	}
}

// FromDomain populates the persistence model from a domain Payment
func (m *PaymentModel) FromDomain(p *payment.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.TenantID = p.TenantID
	m.Amount = p.Amount
	m.Date = p.Date
	m.LinkedInvoiceID = p.LinkedInvoiceID
	m.Status = p.Status
	m.Source = p.Source
}

// PaymentModelFromDomain creates a persistence model from a domain Payment
func PaymentModelFromDomain(p *payment.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
