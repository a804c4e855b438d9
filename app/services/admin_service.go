package services

import (
	"time"

	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/app/repositories"
	"github.com/shashiranjanraj/arogya/pkg/auth"
	"github.com/shashiranjanraj/arogya/pkg/cache"
	"github.com/shashiranjanraj/arogya/pkg/collection"
	"github.com/shashiranjanraj/arogya/pkg/logger"
	"github.com/shashiranjanraj/arogya/pkg/metrics"
	"gorm.io/gorm"
)

const (
	statisticsCacheKey = "admin:statistics"
	statisticsCacheTTL = 30 * time.Second
)

// AdminService mirrors the self-service surface without ownership checks.
// Admins can touch any user or order, change roles, and read aggregate
// statistics. Deleting a user here cascades to the user's orders; the
// self-service path does not.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// ListUsers returns the public profile of every user.
func (s *AdminService) ListUsers() ([]UserProfile, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	users, err := uow.Users.GetAll()
	if err != nil {
		return nil, err
	}

	return collection.Map(users, func(u models.User) UserProfile {
		return profileOf(&u)
	}), nil
}

// GetUser returns the public profile of the named user.
func (s *AdminService) GetUser(name string) (*UserProfile, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	user, err := uow.Users.ByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	p := profileOf(user)
	return &p, nil
}

// UpdateUser applies the supplied non-empty fields to any user, including
// Role. No old-password verification happens on this path.
func (s *AdminService) UpdateUser(name string, in AdminUserUpdateInput) (*UserResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	user, err := uow.Users.ByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.NewPassword != "" {
		hash, err := auth.HashPassword(in.NewPassword)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := uow.Users.Update(user); err != nil {
		return nil, err
	}
	if err := uow.Complete(); err != nil {
		return nil, err
	}

	return &UserResponse{
		Message: "User information updated successfully",
		User:    profileOf(user),
	}, nil
}

// DeleteUser removes a user together with every order the user owns, in one
// transaction.
func (s *AdminService) DeleteUser(name string) (*MessageResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	user, err := uow.Users.ByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	orders, err := uow.Orders.Find("user_id = ?", user.ID)
	if err != nil {
		return nil, err
	}
	if err := uow.Orders.RemoveRange(orders); err != nil {
		return nil, err
	}
	if err := uow.Users.Remove(user); err != nil {
		return nil, err
	}
	if err := uow.Complete(); err != nil {
		return nil, err
	}

	logger.Info("admin deleted user", "name", name, "orders_removed", len(orders))

	return &MessageResponse{Message: "User and related orders deleted successfully"}, nil
}

// ListOrders returns every order, newest first, with owner summaries.
func (s *AdminService) ListOrders() ([]OrderWithOwner, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	orders, err := uow.Orders.AllWithUser()
	if err != nil {
		return nil, err
	}

	return collection.Map(orders, func(o models.Order) OrderWithOwner {
		return withOwnerOf(&o)
	}), nil
}

// GetOrder returns one order with its owner summary.
func (s *AdminService) GetOrder(orderID uint) (*OrderWithOwner, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	order, err := uow.Orders.ByIDWithUser(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFound("Order not found")
	}

	o := withOwnerOf(order)
	return &o, nil
}

// ListOrdersByStatus returns all orders in the given status, queue order,
// with owner summaries.
func (s *AdminService) ListOrdersByStatus(status string) ([]OrderWithOwner, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	orders, err := uow.Orders.ByStatusWithUser(status)
	if err != nil {
		return nil, err
	}

	return collection.Map(orders, func(o models.Order) OrderWithOwner {
		return withOwnerOf(&o)
	}), nil
}

// UpdateOrder overwrites only the supplied fields of any order. Unlike the
// self-service path, an absent description is simply kept.
func (s *AdminService) UpdateOrder(orderID uint, in OrderUpdateInput) (*OrderResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	order, err := uow.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFound("Order not found")
	}

	if in.Description != nil && *in.Description != "" {
		order.Description = *in.Description
	}
	if in.Price != nil {
		order.Price = in.Price
	}
	if in.NextDate != nil {
		order.NextDate = in.NextDate
	}
	if in.Status != "" {
		order.Status = in.Status
	}
	if in.StatusType != "" {
		st := in.StatusType
		order.StatusType = &st
	}

	if err := uow.Orders.Update(order); err != nil {
		return nil, err
	}
	if err := uow.Complete(); err != nil {
		return nil, err
	}

	return &OrderResponse{
		Message: "Order updated successfully",
		Order:   viewOf(order),
	}, nil
}

// DeleteOrder removes any order without an ownership check.
func (s *AdminService) DeleteOrder(orderID uint) (*MessageResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	order, err := uow.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFound("Order not found")
	}

	if err := uow.Orders.Remove(order); err != nil {
		return nil, err
	}
	if err := uow.Complete(); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Order deleted successfully"}, nil
}

// GetStatistics returns the dashboard counters. The result is cached in
// Redis for a short TTL; when Redis is down every call hits the database.
func (s *AdminService) GetStatistics() (*Statistics, error) {
	var cached Statistics
	if hit := cache.Get(statisticsCacheKey, &cached); hit {
		metrics.RecordCacheLookup(statisticsCacheKey, true)
		return &cached, nil
	}
	metrics.RecordCacheLookup(statisticsCacheKey, false)

	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	totalUsers, err := uow.Users.Count(nil)
	if err != nil {
		return nil, err
	}
	totalOrders, err := uow.Orders.Count(nil)
	if err != nil {
		return nil, err
	}
	waiting, err := uow.Orders.Count("status = ?", models.StatusWaiting)
	if err != nil {
		return nil, err
	}
	completed, err := uow.Orders.Count("status = ?", models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	revenue, err := uow.Orders.TotalRevenue()
	if err != nil {
		return nil, err
	}

	stats := Statistics{
		TotalUsers:      totalUsers,
		TotalOrders:     totalOrders,
		WaitingOrders:   waiting,
		CompletedOrders: completed,
		TotalRevenue:    revenue,
	}

	if err := cache.Set(statisticsCacheKey, stats, statisticsCacheTTL); err != nil {
		logger.Warn("statistics cache write failed", "error", err)
	}

	return &stats, nil
}
