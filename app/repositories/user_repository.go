package repositories

import (
	"errors"

	"github.com/shashiranjanraj/arogya/app/models"
	"gorm.io/gorm"
)

// UserRepository adds user-specific lookups on top of the generic base.
type UserRepository struct {
	Repository[models.User]
}

// ByName returns the user with the given login name, or nil when absent.
func (r *UserRepository) ByName(name string) (*models.User, error) {
	var user models.User
	err := r.tx.Where("name = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// NameExists reports whether a user with the given login name exists.
func (r *UserRepository) NameExists(name string) (bool, error) {
	return r.Any("name = ?", name)
}
