package persistence

import (
	"testing"

	"github.com/arenda/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PremiseModel{},
		&models.ReservationModel{},
		&models.TenantModel{},
		&models.LeaseModel{},
		&models.IndexationModel{},
		&models.AccrualModel{},
		&models.InvoiceModel{},
		&models.VATSettingModel{},
		&models.PaymentModel{},
		&models.PenaltyModel{},
	)
	require.NoError(t, err)

	return db
}
