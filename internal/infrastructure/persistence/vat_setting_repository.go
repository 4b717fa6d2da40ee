package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/arenda/backend/internal/domain/billing"
	"github.com/arenda/backend/internal/domain/shared"
	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormVATSettingRepository implements VATSettingRepository using GORM
type GormVATSettingRepository struct {
	db *gorm.DB
}

// NewGormVATSettingRepository creates a new GormVATSettingRepository
func NewGormVATSettingRepository(db *gorm.DB) *GormVATSettingRepository {
	return &GormVATSettingRepository{db: db}
}

// FindAll returns all VAT settings, newest valid-from first
func (r *GormVATSettingRepository) FindAll(ctx context.Context) ([]billing.VATSetting, error) {
	var settingModels []models.VATSettingModel
	if err := r.db.WithContext(ctx).
		Order("valid_from DESC").
		Find(&settingModels).Error; err != nil {
		return nil, err
	}

	settings := make([]billing.VATSetting, len(settingModels))
	for i, model := range settingModels {
		settings[i] = *model.ToDomain()
	}
	return settings, nil
}

// FindForDate finds the settings effective on or before the given date
func (r *GormVATSettingRepository) FindForDate(ctx context.Context, date time.Time) ([]billing.VATSetting, error) {
	var settingModels []models.VATSettingModel
	if err := r.db.WithContext(ctx).
		Where("valid_from <= ?", date).
		Order("valid_from DESC").
		Find(&settingModels).Error; err != nil {
		return nil, err
	}

	settings := make([]billing.VATSetting, len(settingModels))
	for i, model := range settingModels {
		settings[i] = *model.ToDomain()
	}
	return settings, nil
}

// FindByRateAndDate finds an exact (rate, validFrom) entry
func (r *GormVATSettingRepository) FindByRateAndDate(ctx context.Context, rate decimal.Decimal, validFrom time.Time) (*billing.VATSetting, error) {
	var model models.VATSettingModel
	if err := r.db.WithContext(ctx).
		Where("rate = ? AND valid_from = ?", rate, validFrom).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a VAT setting
func (r *GormVATSettingRepository) Save(ctx context.Context, setting *billing.VATSetting) error {
	model := models.VATSettingModelFromDomain(setting)
	return translateSaveError(r.db.WithContext(ctx).Save(model).Error)
}

// Ensure GormVATSettingRepository implements VATSettingRepository
var _ billing.VATSettingRepository = (*GormVATSettingRepository)(nil)
