package services

import (
	"testing"

	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueNumbersStrictlyIncreasing(t *testing.T) {
	db := testDB(t)
	user := registerUser(t, db, "asha")

	for i := 1; i <= 5; i++ {
		order := createOrder(t, db, user.ID, "checkup")
		require.NotNil(t, order.Number)
		assert.Equal(t, i, *order.Number)
		assert.Equal(t, models.StatusWaiting, order.Status)
	}
}

func TestCompletionLeavesGapInQueueNumbers(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	user := registerUser(t, db, "asha")

	first := createOrder(t, db, user.ID, "checkup one")
	second := createOrder(t, db, user.ID, "checkup two")
	third := createOrder(t, db, user.ID, "checkup three")

	// Complete the middle order; the rest keep their numbers.
	completed := models.StatusCompleted
	_, err := svc.UpdateOrder(second.ID, OrderUpdateInput{Status: completed})
	require.NoError(t, err)

	waiting, err := svc.ListWaitingOrders()
	require.NoError(t, err)
	require.Len(t, waiting, 2)
	assert.Equal(t, *first.Number, *waiting[0].Number)
	assert.Equal(t, *third.Number, *waiting[1].Number)

	// The next order continues past the old maximum; number 2 is never reused.
	next := createOrder(t, db, user.ID, "checkup four")
	assert.Equal(t, 4, *next.Number)
}

func TestCreateOrderWithNonWaitingStatusStillGetsNumber(t *testing.T) {
	db := testDB(t)
	user := registerUser(t, db, "asha")
	createOrder(t, db, user.ID, "waiting order")

	res, err := NewUserService(db).CreateOrder(OrderCreateInput{
		UserID:      user.ID,
		Description: "walk-in already seen",
		Status:      models.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, res.Order.Status)
	require.NotNil(t, res.Order.Number)
	assert.Equal(t, 2, *res.Order.Number)
}

func TestCreateOrderValidation(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	user := registerUser(t, db, "asha")

	_, err := svc.CreateOrder(OrderCreateInput{UserID: user.ID, Description: "   "})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.CreateOrder(OrderCreateInput{UserID: 9999, Description: "checkup"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderPartialOverwrite(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	user := registerUser(t, db, "asha")
	order := createOrder(t, db, user.ID, "original description")

	price := 49.5
	res, err := svc.UpdateOrder(order.ID, OrderUpdateInput{Price: &price})
	require.NoError(t, err)

	// Only the supplied field changed; the number was not recomputed.
	assert.Equal(t, "original description", res.Order.Description)
	require.NotNil(t, res.Order.Price)
	assert.Equal(t, price, *res.Order.Price)
	assert.Equal(t, *order.Number, *res.Order.Number)

	blank := ""
	_, err = svc.UpdateOrder(order.ID, OrderUpdateInput{Description: &blank})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.UpdateOrder(9999, OrderUpdateInput{Price: &price})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderStatusDoesNotRenumber(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	user := registerUser(t, db, "asha")
	order := createOrder(t, db, user.ID, "checkup")

	res, err := svc.UpdateOrder(order.ID, OrderUpdateInput{Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, res.Order.Status)
	assert.Equal(t, *order.Number, *res.Order.Number)
}

func TestDeleteOrderOwnership(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	owner := registerUser(t, db, "asha")
	other := registerUser(t, db, "ravi")
	order := createOrder(t, db, owner.ID, "checkup")

	_, err := svc.DeleteOrder(order.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	res, err := svc.DeleteOrder(order.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Order deleted successfully", res.Message)

	_, err = svc.DeleteOrder(order.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProfile(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	registerUser(t, db, "asha")

	profile, err := svc.GetProfile("asha")
	require.NoError(t, err)
	assert.Equal(t, "asha", profile.Name)

	_, err = svc.GetProfile("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileRequiresOldPassword(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	profile := registerUser(t, db, "asha")

	var before models.User
	require.NoError(t, db.First(&before, profile.ID).Error)

	_, err := svc.UpdateProfile("asha", UserUpdateInput{
		OldPassword: "wrongpass",
		NewPassword: "newsecret",
	})
	assert.ErrorIs(t, err, ErrInvalidOldPassword)

	// The stored hash is untouched after a failed verification.
	var after models.User
	require.NoError(t, db.First(&after, profile.ID).Error)
	assert.Equal(t, before.Password, after.Password)
}

func TestUpdateProfileAppliesSuppliedFields(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	profile := registerUser(t, db, "asha")

	res, err := svc.UpdateProfile("asha", UserUpdateInput{
		OldPassword: "secret123",
		FullName:    "Asha R. Nair",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha R. Nair", res.User.FullName)
	assert.Equal(t, "5550100", res.User.Phone)

	// No new password supplied, so the old one still works.
	var stored models.User
	require.NoError(t, db.First(&stored, profile.ID).Error)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))

	// Rotating the password invalidates the old one.
	_, err = svc.UpdateProfile("asha", UserUpdateInput{
		OldPassword: "secret123",
		NewPassword: "fresh-secret",
	})
	require.NoError(t, err)
	require.NoError(t, db.First(&stored, profile.ID).Error)
	assert.False(t, auth.CheckPassword(stored.Password, "secret123"))
	assert.True(t, auth.CheckPassword(stored.Password, "fresh-secret"))
}

func TestSelfDeleteDoesNotCascadeOrders(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	profile := registerUser(t, db, "asha")
	createOrder(t, db, profile.ID, "checkup")

	_, err := svc.DeleteProfile("asha")
	require.NoError(t, err)

	var users, orders int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Order{}).Count(&orders)
	assert.EqualValues(t, 0, users)
	assert.EqualValues(t, 1, orders) // orphaned on purpose
}

func TestListOwnOrdersNewestFirst(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	user := registerUser(t, db, "asha")

	createOrder(t, db, user.ID, "first visit")
	createOrder(t, db, user.ID, "second visit")

	orders, err := svc.ListOwnOrders("asha")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.False(t, orders[0].CreatedDate.Before(orders[1].CreatedDate))

	_, err = svc.ListOwnOrders("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListWaitingOrdersEmbedsOwner(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)
	user := registerUser(t, db, "asha")
	createOrder(t, db, user.ID, "checkup")

	waiting, err := svc.ListWaitingOrders()
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, user.ID, waiting[0].User.ID)
	assert.Equal(t, "asha", waiting[0].User.Name)
}
