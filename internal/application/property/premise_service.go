package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/arenda/backend/internal/domain/leasing"
	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PremiseService handles premise registry operations
type PremiseService struct {
	premiseRepo     property.PremiseRepository
	reservationRepo property.ReservationRepository
	leaseRepo       leasing.LeaseRepository
	clock           shared.Clock
	eventPublisher  shared.EventPublisher
}

// NewPremiseService creates a new PremiseService
func NewPremiseService(
	premiseRepo property.PremiseRepository,
	reservationRepo property.ReservationRepository,
	leaseRepo leasing.LeaseRepository,
	clock shared.Clock,
) *PremiseService {
	return &PremiseService{
		premiseRepo:     premiseRepo,
		reservationRepo: reservationRepo,
		leaseRepo:       leaseRepo,
		clock:           clock,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PremiseService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *PremiseService) publishDomainEvents(ctx context.Context, premise *property.Premise) {
	if s.eventPublisher == nil {
		return
	}
	events := premise.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	premise.ClearDomainEvents()
}

// Create registers a new premise. An empty code is generated from the count
// of existing premises.
func (s *PremiseService) Create(ctx context.Context, req CreatePremiseRequest) (*PremiseResponse, error) {
	code := req.Code
	if code == "" {
		count, err := s.premiseRepo.Count(ctx, shared.DefaultFilter())
		if err != nil {
			return nil, err
		}
		code = fmt.Sprintf("PR-%04d", count+1)
	}

	existing, err := s.premiseRepo.FindByCode(ctx, code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("CODE_TAKEN", fmt.Sprintf("Premise code %s is already in use", code))
	}

	premise, err := property.NewPremise(
		code,
		property.PremiseType(req.Type),
		req.Address,
		req.Floor,
		req.Area,
		property.RateType(req.RateType),
		req.BaseRate,
		req.AvailableFrom,
	)
	if err != nil {
		return nil, err
	}

	if err := s.premiseRepo.Save(ctx, premise); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, premise)

	resp := ToPremiseResponse(premise)
	return &resp, nil
}

// GetByID retrieves a premise by ID
func (s *PremiseService) GetByID(ctx context.Context, id uuid.UUID) (*PremiseResponse, error) {
	premise, err := s.premiseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPremiseResponse(premise)
	return &resp, nil
}

// List retrieves premises matching the filter, with pagination
func (s *PremiseService) List(ctx context.Context, filter PremiseListFilter) (shared.Paginated[PremiseResponse], error) {
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
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	premises, err := s.premiseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[PremiseResponse]{}, err
	}
	total, err := s.premiseRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[PremiseResponse]{}, err
	}

	items := make([]PremiseResponse, 0, len(premises))
	for i := range premises {
		items = append(items, ToPremiseResponse(&premises[i]))
	}
	return shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize), nil
}

// ListAvailable retrieves FREE premises available right now
func (s *PremiseService) ListAvailable(ctx context.Context) ([]PremiseResponse, error) {
	premises, err := s.premiseRepo.FindAvailable(ctx, s.clock.Now())
	if err != nil {
		return nil, err
	}
	items := make([]PremiseResponse, 0, len(premises))
	for i := range premises {
		items = append(items, ToPremiseResponse(&premises[i]))
	}
	return items, nil
}

// Update replaces the premise attributes. The base rate change affects only
// future billing runs; existing accruals are never recomputed.
func (s *PremiseService) Update(ctx context.Context, id uuid.UUID, req UpdatePremiseRequest) (*PremiseResponse, error) {
	premise, err := s.premiseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	premiseType := property.PremiseType(req.Type)
	if !premiseType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PREMISE_TYPE", "Premise type is not valid")
	}
	rateType := property.RateType(req.RateType)
	if !rateType.IsValid() {
		return nil, shared.NewDomainError("INVALID_RATE_TYPE", "Rate type is not valid")
	}
	if req.Area.IsNegative() || req.Area.IsZero() {
		return nil, shared.NewDomainError("INVALID_AREA", "Area must be positive")
	}
	if req.BaseRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_BASE_RATE", "Base rate cannot be negative")
	}

	premise.Type = premiseType
	premise.Address = req.Address
	premise.Floor = req.Floor
	premise.Area = req.Area
	premise.RateType = rateType
	premise.BaseRate = req.BaseRate
	premise.AvailableFrom = req.AvailableFrom
	premise.UpdatedAt = s.clock.Now()
	premise.IncrementVersion()

	if err := s.premiseRepo.Save(ctx, premise); err != nil {
		return nil, err
	}

	resp := ToPremiseResponse(premise)
	return &resp, nil
}

// Delete removes a premise. Refused while any lease, of any status,
// references it.
func (s *PremiseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.premiseRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.leaseRepo.CountByPremise(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("PREMISE_IN_USE", "Premise is referenced by leases and cannot be deleted")
	}

	if err := s.reservationRepo.DeleteByPremise(ctx, id); err != nil {
		return err
	}
	return s.premiseRepo.Delete(ctx, id)
}

// Import registers premises in bulk. Rows fail independently; one bad row
// does not abort the rest.
func (s *PremiseService) Import(ctx context.Context, req ImportPremisesRequest) (*ImportPremisesResponse, error) {
	resp := &ImportPremisesResponse{Results: make([]ImportRowResult, 0, len(req.Rows))}
	for _, row := range req.Rows {
		created, err := s.Create(ctx, CreatePremiseRequest(row))
		if err != nil {
			resp.Failed++
			resp.Results = append(resp.Results, ImportRowResult{Code: row.Code, Error: err.Error()})
			continue
		}
		resp.Imported++
		resp.Results = append(resp.Results, ImportRowResult{Code: created.Code, PremiseID: &created.ID})
	}
	return resp, nil
}
