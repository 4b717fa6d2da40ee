package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/arenda/backend/internal/domain/property"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReservationRepository implements ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// FindByID finds a reservation by its ID
func (r *GormReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Reservation, error) {
	var model models.ReservationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all reservations matching the filter
func (r *GormReservationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Reservation, error) {
	var reservationModels []models.ReservationModel
	query := r.db.WithContext(ctx).Model(&models.ReservationModel{})

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "premise_id":
			query = query.Where("premise_id = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, ReservationSortFields, "until")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("until ASC")
	}

	if err := query.Find(&reservationModels).Error; err != nil {
		return nil, err
	}

	reservations := make([]property.Reservation, len(reservationModels))
	for i, model := range reservationModels {
		reservations[i] = *model.ToDomain()
	}
	return reservations, nil
}

// FindActiveByPremise finds the ACTIVE reservation holding a premise at the
// given instant, excluding excludeID when non-nil
func (r *GormReservationRepository) FindActiveByPremise(ctx context.Context, premiseID uuid.UUID, at time.Time, excludeID *uuid.UUID) (*property.Reservation, error) {
	query := r.db.WithContext(ctx).
		Where("premise_id = ? AND status = ? AND until > ?", premiseID, property.ReservationStatusActive, at)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var model models.ReservationModel
	if err := query.Order("until DESC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindExpiring finds ACTIVE reservations whose deadline is at or before now
func (r *GormReservationRepository) FindExpiring(ctx context.Context, now time.Time) ([]property.Reservation, error) {
	var reservationModels []models.ReservationModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND until <= ?", property.ReservationStatusActive, now).
		Order("until ASC").
		Find(&reservationModels).Error; err != nil {
		return nil, err
	}

	reservations := make([]property.Reservation, len(reservationModels))
	for i, model := range reservationModels {
		reservations[i] = *model.ToDomain()
	}
	return reservations, nil
}

// DeleteByPremise removes all reservations for a premise
func (r *GormReservationRepository) DeleteByPremise(ctx context.Context, premiseID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.ReservationModel{}, "premise_id = ?", premiseID).Error
}

// Save creates or updates a reservation
func (r *GormReservationRepository) Save(ctx context.Context, reservation *property.Reservation) error {
	model := models.ReservationModelFromDomain(reservation)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// Ensure GormReservationRepository implements ReservationRepository
var _ property.ReservationRepository = (*GormReservationRepository)(nil)
