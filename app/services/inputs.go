package services

import "time"

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required,max=20"`
	FullName string `json:"fullName" validate:"required,max=50"`
	Phone    string `json:"phone"    validate:"required,max=15"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateInput is the self-service profile update payload. Only non-empty
// fields overwrite; the old password must verify against the stored hash.
type UserUpdateInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"nullable,min=6"`
	FullName    string `json:"fullName"    validate:"nullable,max=50"`
	Phone       string `json:"phone"       validate:"nullable,max=15"`
}

// AdminUserUpdateInput is the admin user update payload. No old-password
// verification; Role may be changed.
type AdminUserUpdateInput struct {
	FullName    string `json:"fullName"    validate:"nullable,max=50"`
	Phone       string `json:"phone"       validate:"nullable,max=15"`
	Role        string `json:"role"        validate:"nullable,in=User,Admin"`
	NewPassword string `json:"newPassword" validate:"nullable,min=6"`
}

// OrderCreateInput is the order submission payload.
type OrderCreateInput struct {
	UserID      uint       `json:"userId"      validate:"required"`
	Description string     `json:"description" validate:"required,max=150"`
	Price       *float64   `json:"price"       validate:"gte=0"`
	NextDate    *time.Time `json:"nextDate"`
	Status      string     `json:"status"`
	StatusType  *string    `json:"statusType"`
}

// OrderUpdateInput is the partial order update payload. A nil Description
// keeps the current value; a supplied blank one is rejected.
type OrderUpdateInput struct {
	Description *string    `json:"description" validate:"max=150"`
	Price       *float64   `json:"price"       validate:"gte=0"`
	NextDate    *time.Time `json:"nextDate"`
	Status      string     `json:"status"`
	StatusType  string     `json:"statusType"`
}
