package tenant

import (
	"context"

	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for tenant persistence
type Repository interface {
	// FindByID finds a tenant by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// FindByUNP finds a tenant by its tax identifier
	FindByUNP(ctx context.Context, unp string) (*Tenant, error)

	// FindAll finds all tenants matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, error)

	// Save creates or updates a tenant
	Save(ctx context.Context, tenant *Tenant) error

	// Delete removes a tenant
	Delete(ctx context.Context, id uuid.UUID) error
}
