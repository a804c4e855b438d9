package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/arogya/app/services"
	"github.com/shashiranjanraj/arogya/pkg/ctx"
)

// UserController exposes the self-service profile and order endpoints.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetProfile handles GET /api/user/profile/{name}.
func (u *UserController) GetProfile(c *ctx.Context) {
	res, err := u.users.GetProfile(c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// UpdateProfile handles PUT /api/user/profile/{name}.
func (u *UserController) UpdateProfile(c *ctx.Context) {
	var in services.UserUpdateInput
	if !c.BindJSON(&in) {
		return
	}

	res, err := u.users.UpdateProfile(c.Param("name"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// DeleteProfile handles DELETE /api/user/profile/{name}.
func (u *UserController) DeleteProfile(c *ctx.Context) {
	res, err := u.users.DeleteProfile(c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// ListWaitingOrders handles GET /api/user/orders.
func (u *UserController) ListWaitingOrders(c *ctx.Context) {
	res, err := u.users.ListWaitingOrders()
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// MyOrders handles GET /api/user/my-orders/{name}.
func (u *UserController) MyOrders(c *ctx.Context) {
	res, err := u.users.ListOwnOrders(c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// CreateOrder handles POST /api/user/orders.
func (u *UserController) CreateOrder(c *ctx.Context) {
	var in services.OrderCreateInput
	if !c.BindJSON(&in) {
		return
	}

	res, err := u.users.CreateOrder(in)
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// UpdateOrder handles PUT /api/user/orders/{orderId}.
func (u *UserController) UpdateOrder(c *ctx.Context) {
	orderID, err := c.ParamInt("orderId")
	if err != nil {
		c.Error(http.StatusBadRequest, "Invalid order id")
		return
	}

	var in services.OrderUpdateInput
	if !c.BindJSON(&in) {
		return
	}

	res, err := u.users.UpdateOrder(uint(orderID), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// DeleteOrder handles DELETE /api/user/orders/{orderId}/{userId}.
func (u *UserController) DeleteOrder(c *ctx.Context) {
	orderID, err := c.ParamInt("orderId")
	if err != nil {
		c.Error(http.StatusBadRequest, "Invalid order id")
		return
	}
	userID, err := c.ParamInt("userId")
	if err != nil {
		c.Error(http.StatusBadRequest, "Invalid user id")
		return
	}

	res, err := u.users.DeleteOrder(uint(orderID), uint(userID))
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}
