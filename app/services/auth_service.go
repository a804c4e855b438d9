// Package services holds the domain services: auth, user self-service, and
// administration. Each operation opens one unit of work, performs its reads
// and writes inside that transaction, and commits with Complete().
package services

import (
	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/app/repositories"
	"github.com/shashiranjanraj/arogya/pkg/auth"
	"github.com/shashiranjanraj/arogya/pkg/logger"
	"gorm.io/gorm"
)

// AuthService handles registration and login.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a new user with role User and returns a signed token
// plus the public profile. Fails with ErrDuplicateName when the login name
// is taken.
func (s *AuthService) Register(in RegisterInput) (*AuthResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	taken, err := uow.Users.NameExists(in.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     in.Name,
		FullName: in.FullName,
		Phone:    in.Phone,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := uow.Users.Add(&user); err != nil {
		return nil, err
	}
	if err := uow.Complete(); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", "user_id", user.ID, "name", user.Name)

	return &AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    profileOf(&user),
	}, nil
}

// Login verifies the credentials and returns a signed token plus the public
// profile. Unknown name and wrong password both fail with
// ErrInvalidCredentials so the response does not leak which one it was.
func (s *AuthService) Login(in LoginInput) (*AuthResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	user, err := uow.Users.ByName(in.Name)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.Password, in.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    profileOf(user),
	}, nil
}
