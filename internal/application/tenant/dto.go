package tenant

import (
	"time"

	"github.com/arenda/backend/internal/domain/tenant"
	"github.com/google/uuid"
)

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID          uuid.UUID         `json:"id"`
	Type        tenant.TenantType `json:"type"`
	Name        string            `json:"name"`
	UNP         string            `json:"unp"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	BankAccount string            `json:"bank_account,omitempty"`
	Address     string            `json:"address,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Version     int               `json:"version"`
}

// ToTenantResponse maps a tenant aggregate to its response form
func ToTenantResponse(t *tenant.Tenant) TenantResponse {
	return TenantResponse{
		ID:          t.ID,
		Type:        t.Type,
		Name:        t.Name,
		UNP:         t.UNP,
		Email:       t.Email,
		Phone:       t.Phone,
		BankAccount: t.BankAccount,
		Address:     t.Address,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Version:     t.Version,
	}
}

// CreateTenantRequest represents a request to register a renting party
type CreateTenantRequest struct {
	Type        string `json:"type" binding:"required,oneof=LEGAL INDIVIDUAL"`
	Name        string `json:"name" binding:"required"`
	UNP         string `json:"unp" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	BankAccount string `json:"bank_account"`
	Address     string `json:"address"`
}

// UpdateTenantRequest represents a request to update a renting party.
// Identity fields (type, name, UNP) change only while no lease references
// the tenant.
type UpdateTenantRequest struct {
	Type        string `json:"type" binding:"required,oneof=LEGAL INDIVIDUAL"`
	Name        string `json:"name" binding:"required"`
	UNP         string `json:"unp" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	BankAccount string `json:"bank_account"`
	Address     string `json:"address"`
}

// TenantListFilter represents filter options for the tenant list
type TenantListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=LEGAL INDIVIDUAL"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
