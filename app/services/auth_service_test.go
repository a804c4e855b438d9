package services

import (
	"testing"

	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterReturnsTokenAndProfile(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db)

	res, err := svc.Register(RegisterInput{
		Name:     "asha",
		FullName: "Asha Rao",
		Phone:    "5550101",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "User registered successfully", res.Message)
	assert.Equal(t, "asha", res.User.Name)
	assert.Equal(t, models.RoleUser, res.User.Role)
	assert.NotZero(t, res.User.ID)

	claims, err := auth.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestRegisterDuplicateName(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db)

	registerUser(t, db, "asha")

	_, err := svc.Register(RegisterInput{
		Name:     "asha",
		FullName: "Someone Else",
		Phone:    "5550102",
		Password: "different1",
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestRegisterNeverStoresPlaintextPassword(t *testing.T) {
	db := testDB(t)
	profile := registerUser(t, db, "asha")

	var stored models.User
	require.NoError(t, db.First(&stored, profile.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db)
	registerUser(t, db, "asha")

	res, err := svc.Login(LoginInput{Name: "asha", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", res.Message)
	assert.NotEmpty(t, res.Token)

	_, err = svc.Login(LoginInput{Name: "asha", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginInput{Name: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
