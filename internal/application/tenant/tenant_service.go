package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/domain/tenant"
	"github.com/google/uuid"
)

// TenantService handles renting-party registry operations
type TenantService struct {
	tenantRepo tenant.Repository
	leaseRepo  leasing.LeaseRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo tenant.Repository, leaseRepo leasing.LeaseRepository) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		leaseRepo:  leaseRepo,
	}
}

// Create registers a new tenant. The tax identifier must be unique.
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	existing, err := s.tenantRepo.FindByUNP(ctx, req.UNP)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("UNP_TAKEN", fmt.Sprintf("A tenant with UNP %s already exists", req.UNP))
	}

	t, err := tenant.NewTenant(
		tenant.TenantType(req.Type),
		req.Name,
		req.UNP,
		req.Email,
		req.Phone,
		req.BankAccount,
		req.Address,
	)
	if err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	resp := ToTenantResponse(t)
	return &resp, nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	t, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTenantResponse(t)
	return &resp, nil
}

// List retrieves tenants matching the filter
func (s *TenantService) List(ctx context.Context, filter TenantListFilter) ([]TenantResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}

	tenants, err := s.tenantRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	items := make([]TenantResponse, 0, len(tenants))
	for i := range tenants {
		items = append(items, ToTenantResponse(&tenants[i]))
	}
	return items, nil
}

// Update changes tenant details. Contact fields always change; identity
// fields (type, name, UNP) only while no lease references the tenant.
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	t, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	identityChanged := t.Type != tenant.TenantType(req.Type) || t.Name != req.Name || t.UNP != req.UNP
	if identityChanged {
		count, err := s.leaseRepo.CountByTenant(ctx, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, shared.NewDomainError("TENANT_IN_USE", "Identity fields are frozen while leases reference the tenant")
		}
		if t.UNP != req.UNP {
			existing, err := s.tenantRepo.FindByUNP(ctx, req.UNP)
			if err != nil && !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			if existing != nil {
				return nil, shared.NewDomainError("UNP_TAKEN", fmt.Sprintf("A tenant with UNP %s already exists", req.UNP))
			}
		}
		if err := t.Rename(tenant.TenantType(req.Type), req.Name, req.UNP); err != nil {
			return nil, err
		}
	}

	t.UpdateContact(req.Email, req.Phone, req.BankAccount, req.Address)

	if err := s.tenantRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	resp := ToTenantResponse(t)
	return &resp, nil
}

// Delete removes a tenant. Refused while any lease references it.
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tenantRepo.FindByID(ctx, id); err != nil {
		return err
	}
	count, err := s.leaseRepo.CountByTenant(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("TENANT_IN_USE", "Tenant is referenced by leases and cannot be deleted")
	}
	return s.tenantRepo.Delete(ctx, id)
}
