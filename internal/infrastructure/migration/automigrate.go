package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model covered by schema migration.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.TicketHistoryModel{},
	}
}

// Run applies GORM AutoMigrate for all registered models.
func Run(db *gorm.DB) error {
	migrateModels := AutoMigrateModels()

	logger.Info("starting database migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database migration completed successfully")
	return nil
}
