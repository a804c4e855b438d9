// Package routes wires the HTTP surface to the controllers.
package routes

import (
	"github.com/shashiranjanraj/arogya/app/controllers"
	"github.com/shashiranjanraj/arogya/app/services"
	"github.com/shashiranjanraj/arogya/pkg/ctx"
	"github.com/shashiranjanraj/arogya/pkg/middleware"
	"github.com/shashiranjanraj/arogya/pkg/rbac"
	"github.com/shashiranjanraj/arogya/pkg/router"
	"gorm.io/gorm"
)

// RegisterAPI mounts every API route. The /api/admin namespace requires a
// valid token with the Admin role; /api/user is open.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	adminCtl := controllers.NewAdminController(services.NewAdminService(db))

	user := r.Group("/api/user")
	user.Post("/register", "user.register", ctx.Wrap(authCtl.Register))
	user.Post("/login", "user.login", ctx.Wrap(authCtl.Login))
	user.Get("/profile/{name}", "user.profile", ctx.Wrap(userCtl.GetProfile))
	user.Put("/profile/{name}", "user.profile.update", ctx.Wrap(userCtl.UpdateProfile))
	user.Delete("/profile/{name}", "user.profile.delete", ctx.Wrap(userCtl.DeleteProfile))
	user.Get("/orders", "user.orders", ctx.Wrap(userCtl.ListWaitingOrders))
	user.Get("/my-orders/{name}", "user.orders.own", ctx.Wrap(userCtl.MyOrders))
	user.Post("/orders", "user.orders.create", ctx.Wrap(userCtl.CreateOrder))
	user.Put("/orders/{orderId}", "user.orders.update", ctx.Wrap(userCtl.UpdateOrder))
	user.Delete("/orders/{orderId}/{userId}", "user.orders.delete", ctx.Wrap(userCtl.DeleteOrder))

	admin := r.Group("/api/admin", middleware.Auth, rbac.HasRole("Admin"))
	admin.Get("/users", "admin.users", ctx.Wrap(adminCtl.ListUsers))
	admin.Get("/users/{name}", "admin.users.show", ctx.Wrap(adminCtl.GetUser))
	admin.Put("/users/{name}", "admin.users.update", ctx.Wrap(adminCtl.UpdateUser))
	admin.Delete("/users/{name}", "admin.users.delete", ctx.Wrap(adminCtl.DeleteUser))
	admin.Get("/orders", "admin.orders", ctx.Wrap(adminCtl.ListOrders))
	admin.Get("/orders/status/{status}", "admin.orders.status", ctx.Wrap(adminCtl.OrdersByStatus))
	admin.Get("/orders/{orderId}", "admin.orders.show", ctx.Wrap(adminCtl.GetOrder))
	admin.Put("/orders/{orderId}", "admin.orders.update", ctx.Wrap(adminCtl.UpdateOrder))
	admin.Delete("/orders/{orderId}", "admin.orders.delete", ctx.Wrap(adminCtl.DeleteOrder))
	admin.Get("/statistics", "admin.statistics", ctx.Wrap(adminCtl.Statistics))
}
