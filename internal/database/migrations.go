package database

import (
	"strings"

	"gorm.io/gorm"

	"github.com/reliefmap/reliefmap/internal/models"
)

// AutoMigrate creates or updates the database schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.MapMarker{},
		&models.Alert{},
		&models.HelpRequest{},
		&models.Report{},
		&models.Message{},
		&models.AuditLog{},
	)
}

// SeedData provisions the bootstrap admin account when configured and not
// already present. The password is expected to arrive pre-hashed.
func SeedData(db *gorm.DB, seed SeedConfig) error {
	username := strings.TrimSpace(seed.AdminUsername)
	if username == "" || seed.AdminPassword == "" {
		return nil
	}

	admin := models.User{
		Username: username,
		Password: seed.AdminPassword,
		Role:     models.RoleAdmin,
	}

	return db.Where(models.User{Username: username}).
		Attrs(admin).
		FirstOrCreate(&models.User{}).Error
}
