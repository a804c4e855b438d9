package seeders

import (
	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/config"
	"github.com/shashiranjanraj/arogya/pkg/auth"
	"gorm.io/gorm"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin creates the default admin account from ADMIN_NAME/ADMIN_PASSWORD
// when no admin exists yet. Credentials come from configuration, never from
// hardcoded values.
func SeedAdmin(db *gorm.DB) error {
	name := config.AdminName()
	password := config.AdminPassword()
	if name == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     name,
		FullName: "Administrator",
		Password: hash,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
