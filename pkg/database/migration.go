package database

import (
	"github.com/rumahpeduli/cms-api/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.OneTimePasscode{},
		&model.Activity{},
		&model.ActivityProgram{},
		&model.ActivityOrganization{},
		&model.Partner{},
		&model.DailyWork{},
	)
}
