package database

import (
	"github.com/rumahpeduli/cms-api/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultSuperadmin defines the bootstrap account created on first boot.
type DefaultSuperadmin struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// GetDefaultSuperadmin returns the default bootstrap account
func GetDefaultSuperadmin() DefaultSuperadmin {
	return DefaultSuperadmin{
		FirstName: "Super",
		LastName:  "Admin",
		Email:     "superadmin@rumahpeduli.org",
		Password:  "Admin@123", // Change this in production!
		Phone:     "+6281234567890",
	}
}

// Seed creates initial data for the database
func Seed(db *gorm.DB) error {
	return SeedSuperadmin(db)
}

// SeedSuperadmin creates the bootstrap SUPERADMIN if not exists.
// Regular accounts never store a usable password; only this seeded row
// carries a bcrypt hash, kept for a possible future password flow.
func SeedSuperadmin(db *gorm.DB) error {
	admin := GetDefaultSuperadmin()

	var existingUser model.User
	result := db.Where("email = ?", admin.Email).First(&existingUser)

	if result.Error == nil {
		// User already exists, skip seeding
		return nil
	}

	if result.Error != gorm.ErrRecordNotFound {
		return result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		Password:  string(hashedPassword),
		Phone:     admin.Phone,
		Role:      model.RoleSuperadmin,
		Validated: true,
	}

	return db.Create(&user).Error
}
