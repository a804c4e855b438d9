package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/arogya/app/services"
	"github.com/shashiranjanraj/arogya/pkg/ctx"
)

// AdminController exposes the administration endpoints. The routes are
// guarded by the auth middleware plus an Admin role check.
type AdminController struct {
	admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

// ListUsers handles GET /api/admin/users.
func (a *AdminController) ListUsers(c *ctx.Context) {
	res, err := a.admin.ListUsers()
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// GetUser handles GET /api/admin/users/{name}.
func (a *AdminController) GetUser(c *ctx.Context) {
	res, err := a.admin.GetUser(c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// UpdateUser handles PUT /api/admin/users/{name}.
func (a *AdminController) UpdateUser(c *ctx.Context) {
	var in services.AdminUserUpdateInput
	if !c.BindJSON(&in) {
		return
	}

	res, err := a.admin.UpdateUser(c.Param("name"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// DeleteUser handles DELETE /api/admin/users/{name}.
func (a *AdminController) DeleteUser(c *ctx.Context) {
	res, err := a.admin.DeleteUser(c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// ListOrders handles GET /api/admin/orders.
func (a *AdminController) ListOrders(c *ctx.Context) {
	res, err := a.admin.ListOrders()
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// GetOrder handles GET /api/admin/orders/{orderId}.
func (a *AdminController) GetOrder(c *ctx.Context) {
	orderID, err := c.ParamInt("orderId")
	if err != nil {
		c.Error(http.StatusBadRequest, "Invalid order id")
		return
	}

	res, err := a.admin.GetOrder(uint(orderID))
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// OrdersByStatus handles GET /api/admin/orders/status/{status}.
func (a *AdminController) OrdersByStatus(c *ctx.Context) {
	res, err := a.admin.ListOrdersByStatus(c.Param("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// UpdateOrder handles PUT /api/admin/orders/{orderId}.
func (a *AdminController) UpdateOrder(c *ctx.Context) {
	orderID, err := c.ParamInt("orderId")
	if err != nil {
		c.Error(http.StatusBadRequest, "Invalid order id")
		return
	}

	var in services.OrderUpdateInput
	if !c.BindJSON(&in) {
		return
	}

	res, err := a.admin.UpdateOrder(uint(orderID), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// DeleteOrder handles DELETE /api/admin/orders/{orderId}.
func (a *AdminController) DeleteOrder(c *ctx.Context) {
	orderID, err := c.ParamInt("orderId")
	if err != nil {
		c.Error(http.StatusBadRequest, "Invalid order id")
		return
	}

	res, err := a.admin.DeleteOrder(uint(orderID))
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}

// Statistics handles GET /api/admin/statistics.
func (a *AdminController) Statistics(c *ctx.Context) {
	res, err := a.admin.GetStatistics()
	if err != nil {
		fail(c, err)
		return
	}
	c.OK(res)
}
