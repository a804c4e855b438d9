package services

import (
	"testing"

	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database per test. The pool is pinned to a
// single connection so every transaction sees the same memory store.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Order{}))
	return db
}

// registerUser creates a user through the auth service and returns the
// public profile.
func registerUser(t *testing.T, db *gorm.DB, name string) UserProfile {
	t.Helper()

	res, err := NewAuthService(db).Register(RegisterInput{
		Name:     name,
		FullName: name + " Example",
		Phone:    "5550100",
		Password: "secret123",
	})
	require.NoError(t, err)
	return res.User
}

// createOrder submits an order for the given user and returns the stored view.
func createOrder(t *testing.T, db *gorm.DB, userID uint, description string) OrderView {
	t.Helper()

	res, err := NewUserService(db).CreateOrder(OrderCreateInput{
		UserID:      userID,
		Description: description,
	})
	require.NoError(t, err)
	return res.Order
}
