package services

import (
	"strings"
	"time"

	"github.com/shashiranjanraj/arogya/app/models"
	"github.com/shashiranjanraj/arogya/app/repositories"
	"github.com/shashiranjanraj/arogya/pkg/auth"
	"github.com/shashiranjanraj/arogya/pkg/collection"
	"gorm.io/gorm"
)

// UserService implements the self-service surface: profile management and
// the order queue.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile returns the public profile of the named user.
func (s *UserService) GetProfile(name string) (*UserProfile, error) {
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

// UpdateProfile applies the supplied non-empty fields to the named user's
// profile. The old password must verify against the stored hash first; on a
// mismatch the hash is left untouched and ErrInvalidOldPassword is returned.
// The hash is rotated only when a new password is supplied.
func (s *UserService) UpdateProfile(name string, in UserUpdateInput) (*UserResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	user, err := uow.Users.ByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	if !auth.CheckPassword(user.Password, in.OldPassword) {
		return nil, ErrInvalidOldPassword
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Phone != "" {
		user.Phone = in.Phone
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

// DeleteProfile removes the named user. The user's orders are NOT removed
// here; only the admin deletion path cascades.
func (s *UserService) DeleteProfile(name string) (*MessageResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	user, err := uow.Users.ByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	if err := uow.Users.Remove(user); err != nil {
		return nil, err
	}
	if err := uow.Complete(); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "User deleted successfully"}, nil
}

// ListWaitingOrders returns the current waiting queue in queue-number order,
// each entry with its owner summary embedded.
func (s *UserService) ListWaitingOrders() ([]OrderWithOwner, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	orders, err := uow.Orders.WaitingWithUser()
	if err != nil {
		return nil, err
	}

	return collection.Map(orders, func(o models.Order) OrderWithOwner {
		return withOwnerOf(&o)
	}), nil
}

// ListOwnOrders returns the named user's orders, newest first. No owner is
// embedded since it is self-evident.
func (s *UserService) ListOwnOrders(name string) ([]OrderView, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	user, err := uow.Users.ByName(name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	orders, err := uow.Orders.ForUser(user.ID)
	if err != nil {
		return nil, err
	}

	return collection.Map(orders, func(o models.Order) OrderView {
		return viewOf(&o)
	}), nil
}

// CreateOrder submits a new order for the given user. The queue number is
// the current waiting-set maximum plus one, read from the table at this
// instant. The number is assigned even when the caller supplies a
// non-Waiting status.
func (s *UserService) CreateOrder(in OrderCreateInput) (*OrderResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, validationError("Description is required")
	}

	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	exists, err := uow.Users.Any("id = ?", in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("User not found")
	}

	max, err := uow.Orders.MaxWaitingNumber()
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.StatusWaiting
	}

	number := max + 1
	order := models.Order{
		Description: in.Description,
		Number:      &number,
		Price:       in.Price,
		CreatedDate: time.Now(),
		NextDate:    in.NextDate,
		Status:      status,
		StatusType:  in.StatusType,
		UserID:      in.UserID,
	}

	if err := uow.Orders.Add(&order); err != nil {
		return nil, err
	}
	if err := uow.Complete(); err != nil {
		return nil, err
	}

	return &OrderResponse{
		Message: "Order added successfully",
		Order:   viewOf(&order),
	}, nil
}

// UpdateOrder overwrites only the supplied fields of an existing order.
// The queue number is never recomputed, even when the status changes.
func (s *UserService) UpdateOrder(orderID uint, in OrderUpdateInput) (*OrderResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	order, err := uow.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFound("Order not found")
	}

	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, validationError("Description is required")
		}
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

// DeleteOrder removes an order after checking the requester owns it.
func (s *UserService) DeleteOrder(orderID, requesterID uint) (*MessageResponse, error) {
	uow := repositories.Begin(s.db)
	defer uow.Rollback()

	order, err := uow.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFound("Order not found")
	}
	if order.UserID != requesterID {
		return nil, ErrForbidden
	}

	if err := uow.Orders.Remove(order); err != nil {
		return nil, err
	}
	if err := uow.Complete(); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Order deleted successfully"}, nil
}
