package models

import (
	"github.com/arenda/backend/internal/domain/tenant"
)

// TenantModel is the persistence model for the Tenant aggregate root
type TenantModel struct {
	AggregateModel
	Type        tenant.TenantType `gorm:"type:varchar(20);not null;index"`
	Name        string            `gorm:"type:varchar(300);not null;index"`
	UNP         string            `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email       string            `gorm:"type:varchar(200)"`
	Phone       string            `gorm:"type:varchar(50)"`
	BankAccount string            `gorm:"type:varchar(50)"`
	Address     string            `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the persistence model to a domain Tenant
func (m *TenantModel) ToDomain() *tenant.Tenant {
	return &tenant.Tenant{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Type:              m.Type,
		Name:              m.Name,
		UNP:               m.UNP,
		Email:             m.Email,
		Phone:             m.Phone,
		BankAccount:       m.BankAccount,
		Address:           m.Address,
	}
}

// FromDomain populates the persistence model from a domain Tenant
func (m *TenantModel) FromDomain(t *tenant.Tenant) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Type = t.Type
	m.Name = t.Name
	m.UNP = t.UNP
	m.Email = t.Email
	m.Phone = t.Phone
	m.BankAccount = t.BankAccount
	m.Address = t.Address
}

// TenantModelFromDomain creates a persistence model from a domain Tenant
func TenantModelFromDomain(t *tenant.Tenant) *TenantModel {
	m := &TenantModel{}
	m.FromDomain(t)
	return m
}
