package database

import (
	"fmt"

	"gorm.io/gorm"

	"group-exercise-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// Participants and records carry ON DELETE CASCADE foreign keys back to
// their group, so deleting a group removes its children at the store.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Group{},
		&domain.Participant{},
		&domain.Record{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
