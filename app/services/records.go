package services

import (
	"time"

	"github.com/shashiranjanraj/arogya/app/models"
)

// Response records. Every endpoint returns one of these fixed shapes; the
// password hash never appears in any of them.

// UserProfile is the public view of a user.
type UserProfile struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// AuthResponse is returned by Register and Login.
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}

// UserResponse wraps a profile with a confirmation message.
type UserResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

// MessageResponse is a bare confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// OwnerSummary is the embedded owner view on order listings.
type OwnerSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// OrderView is an order without its owner embedded.
type OrderView struct {
	ID          uint       `json:"id"`
	Description string     `json:"description"`
	Number      *int       `json:"number"`
	Price       *float64   `json:"price"`
	CreatedDate time.Time  `json:"createdDate"`
	NextDate    *time.Time `json:"nextDate"`
	Status      string     `json:"status"`
	StatusType  *string    `json:"statusType"`
	UserID      uint       `json:"userId"`
}

// OrderWithOwner is an order with its owner summary embedded.
type OrderWithOwner struct {
	OrderView
	User OwnerSummary `json:"user"`
}

// OrderResponse wraps an order with a confirmation message.
type OrderResponse struct {
	Message string    `json:"message"`
	Order   OrderView `json:"order"`
}

// Statistics is the admin dashboard summary. TotalRevenue sums only orders
// whose price is set; unpriced orders are excluded, not treated as zero.
type Statistics struct {
	TotalUsers      int64   `json:"totalUsers"`
	TotalOrders     int64   `json:"totalOrders"`
	WaitingOrders   int64   `json:"waitingOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

func profileOf(u *models.User) UserProfile {
	return UserProfile{
		ID:       u.ID,
		Name:     u.Name,
		FullName: u.FullName,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}

func ownerOf(u *models.User) OwnerSummary {
	if u == nil {
		return OwnerSummary{}
	}
	return OwnerSummary{
		ID:       u.ID,
		Name:     u.Name,
		FullName: u.FullName,
		Phone:    u.Phone,
	}
}

func viewOf(o *models.Order) OrderView {
	return OrderView{
		ID:          o.ID,
		Description: o.Description,
		Number:      o.Number,
		Price:       o.Price,
		CreatedDate: o.CreatedDate,
		NextDate:    o.NextDate,
		Status:      o.Status,
		StatusType:  o.StatusType,
		UserID:      o.UserID,
	}
}

func withOwnerOf(o *models.Order) OrderWithOwner {
	return OrderWithOwner{
		OrderView: viewOf(o),
		User:      ownerOf(o.User),
	}
}
