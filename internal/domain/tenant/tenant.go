package tenant

import (
	"time"

	"github.com/arenda/backend/internal/domain/shared"
)

// TenantType distinguishes legal entities from individual entrepreneurs
type TenantType string

const (
	TenantTypeLegal      TenantType = "LEGAL"
	TenantTypeIndividual TenantType = "INDIVIDUAL"
)

// IsValid checks if the tenant type is valid
func (t TenantType) IsValid() bool {
	return t == TenantTypeLegal || t == TenantTypeIndividual
}

// Tenant represents a renting party. The identity fields (type, name, UNP)
// are frozen once a lease references the tenant; only contact details stay
// editable after that.
type Tenant struct {
	shared.BaseAggregateRoot
	Type        TenantType
	Name        string
	UNP         string // tax identifier, unique across tenants
	Email       string
	Phone       string
	BankAccount string
	Address     string
}

// NewTenant creates a new tenant party
func NewTenant(tenantType TenantType, name, unp, email, phone, bankAccount, address string) (*Tenant, error) {
	if !tenantType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TENANT_TYPE", "Tenant type is not valid")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if unp == "" {
		return nil, shared.NewDomainError("INVALID_UNP", "Tax identifier cannot be empty")
	}

	return &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              tenantType,
		Name:              name,
		UNP:               unp,
		Email:             email,
		Phone:             phone,
		BankAccount:       bankAccount,
		Address:           address,
	}, nil
}

// UpdateContact updates the mutable contact fields
func (t *Tenant) UpdateContact(email, phone, bankAccount, address string) {
	t.Email = email
	t.Phone = phone
	t.BankAccount = bankAccount
	t.Address = address
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// Rename changes identity fields. Allowed only while no lease references
// the tenant; the caller checks that through the repository.
func (t *Tenant) Rename(tenantType TenantType, name, unp string) error {
	if !tenantType.IsValid() {
		return shared.NewDomainError("INVALID_TENANT_TYPE", "Tenant type is not valid")
	}
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if unp == "" {
		return shared.NewDomainError("INVALID_UNP", "Tax identifier cannot be empty")
	}
	t.Type = tenantType
	t.Name = name
	t.UNP = unp
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}
