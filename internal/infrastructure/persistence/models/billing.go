package models

import (
	"time"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccrualModel is the persistence model for accruals. The unique index on
// (lease, period) is what makes the billing run idempotent under concurrency.
type AccrualModel struct {
	BaseModel
	LeaseID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_accrual_lease_period,priority:1"`
	PeriodYear  int             `gorm:"not null;uniqueIndex:idx_accrual_lease_period,priority:2"`
	PeriodMonth int             `gorm:"not null;uniqueIndex:idx_accrual_lease_period,priority:3"`
	BaseAmount  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	VATAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName returns the table name for GORM
func (AccrualModel) TableName() string {
	return "accruals"
}

// ToDomain converts the persistence model to a domain Accrual
func (m *AccrualModel) ToDomain() *billing.Accrual {
	return &billing.Accrual{
		BaseEntity: m.BaseModel.ToDomain(),
		LeaseID:    m.LeaseID,
		Period:     billing.Period{Year: m.PeriodYear, Month: time.Month(m.PeriodMonth)},
		BaseAmount: m.BaseAmount,
		VATAmount:  m.VATAmount,
		Total:      m.Total,
	}
}

// FromDomain populates the persistence model from a domain Accrual
func (m *AccrualModel) FromDomain(a *billing.Accrual) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.LeaseID = a.LeaseID
	m.PeriodYear = a.Period.Year
	m.PeriodMonth = int(a.Period.Month)
	m.BaseAmount = a.BaseAmount
	m.VATAmount = a.VATAmount
	m.Total = a.Total
}

// AccrualModelFromDomain creates a persistence model from a domain Accrual
func AccrualModelFromDomain(a *billing.Accrual) *AccrualModel {
	m := &AccrualModel{}
	m.FromDomain(a)
	return m
}

// InvoiceModel is the persistence model for invoices
type InvoiceModel struct {
	BaseModel
	AccrualID uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex"`
	Number    string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	Date      time.Time             `gorm:"not null;index"`
	Status    billing.InvoiceStatus `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		BaseEntity: m.BaseModel.ToDomain(),
		AccrualID:  m.AccrualID,
		Number:     m.Number,
		Date:       m.Date,
		Status:     m.Status,
	}
}

// FromDomain populates the persistence model from a domain Invoice
func (m *InvoiceModel) FromDomain(i *billing.Invoice) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.AccrualID = i.AccrualID
	m.Number = i.Number
	m.Date = i.Date
	m.Status = i.Status
}

// InvoiceModelFromDomain creates a persistence model from a domain Invoice
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}

// VATSettingModel is the persistence model for system VAT rates
type VATSettingModel struct {
	BaseModel
	Rate      decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	ValidFrom time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (VATSettingModel) TableName() string {
	return "vat_settings"
}

// ToDomain converts the persistence model to a domain VATSetting
func (m *VATSettingModel) ToDomain() *billing.VATSetting {
	return &billing.VATSetting{
		BaseEntity: m.BaseModel.ToDomain(),
		Rate:       m.Rate,
		ValidFrom:  m.ValidFrom,
	}
}

// FromDomain populates the persistence model from a domain VATSetting
func (m *VATSettingModel) FromDomain(v *billing.VATSetting) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.Rate = v.Rate
	m.ValidFrom = v.ValidFrom
}

// VATSettingModelFromDomain creates a persistence model from a domain VATSetting
func VATSettingModelFromDomain(v *billing.VATSetting) *VATSettingModel {
	m := &VATSettingModel{}
	m.FromDomain(v)
	return m
}
