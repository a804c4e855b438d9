package services

import (
	"testing"

	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDeleteUserCascadesOrders(t *testing.T) {
	db := testDB(t)
	svc := NewAdminService(db)
	victim := registerUser(t, db, "asha")
	bystander := registerUser(t, db, "ravi")
	createOrder(t, db, victim.ID, "checkup one")
	createOrder(t, db, victim.ID, "checkup two")
	createOrder(t, db, bystander.ID, "unrelated")

	res, err := svc.DeleteUser("asha")
	require.NoError(t, err)
	assert.Equal(t, "User and related orders deleted successfully", res.Message)

	var orders []models.Order
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, bystander.ID, orders[0].UserID)

	_, err = svc.DeleteUser("asha")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminUpdateUserCanChangeRole(t *testing.T) {
	db := testDB(t)
	svc := NewAdminService(db)
	profile := registerUser(t, db, "asha")

	res, err := svc.UpdateUser("asha", AdminUserUpdateInput{Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, res.User.Role)

	// No old-password check on the admin path.
	_, err = svc.UpdateUser("asha", AdminUserUpdateInput{NewPassword: "reset-by-admin"})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, profile.ID).Error)
	assert.True(t, auth.CheckPassword(stored.Password, "reset-by-admin"))
}

func TestAdminListAndGetOrders(t *testing.T) {
	db := testDB(t)
	svc := NewAdminService(db)
	user := registerUser(t, db, "asha")
	order := createOrder(t, db, user.ID, "checkup")

	all, err := svc.ListOrders()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "asha", all[0].User.Name)

	got, err := svc.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, user.ID, got.User.ID)

	_, err = svc.GetOrder(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminOrdersByStatus(t *testing.T) {
	db := testDB(t)
	svc := NewAdminService(db)
	userSvc := NewUserService(db)
	user := registerUser(t, db, "asha")

	createOrder(t, db, user.ID, "still waiting")
	done := createOrder(t, db, user.ID, "finished visit")
	_, err := userSvc.UpdateOrder(done.ID, OrderUpdateInput{Status: models.StatusCompleted})
	require.NoError(t, err)

	waiting, err := svc.ListOrdersByStatus(models.StatusWaiting)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, "still waiting", waiting[0].Description)

	completed, err := svc.ListOrdersByStatus(models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "finished visit", completed[0].Description)
}

func TestStatisticsExcludesNullPricesFromRevenue(t *testing.T) {
	db := testDB(t)
	svc := NewAdminService(db)
	userSvc := NewUserService(db)
	user := registerUser(t, db, "asha")

	ten, twenty := 10.0, 20.0
	_, err := userSvc.CreateOrder(OrderCreateInput{UserID: user.ID, Description: "a", Price: &ten})
	require.NoError(t, err)
	_, err = userSvc.CreateOrder(OrderCreateInput{UserID: user.ID, Description: "b"})
	require.NoError(t, err)
	_, err = userSvc.CreateOrder(OrderCreateInput{UserID: user.ID, Description: "c", Price: &twenty})
	require.NoError(t, err)

	stats, err := svc.GetStatistics()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalUsers)
	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.EqualValues(t, 3, stats.WaitingOrders)
	assert.EqualValues(t, 0, stats.CompletedOrders)
	assert.Equal(t, 30.0, stats.TotalRevenue)
}
