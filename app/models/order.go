package models

import "time"

// Order is a queued clinic visit request owned by exactly one user.
//
// Number is the waiting-queue position assigned once at creation as
// (max Number among currently Waiting orders) + 1. It is never recomputed,
// so completed orders leave gaps in the sequence. Ownership (UserID) is
// immutable after creation.
type Order struct {
	ID          uint       `gorm:"primaryKey"            json:"id"`
	Description string     `gorm:"size:150;not null"     json:"description"`
	Number      *int       `json:"number"`
	Price       *float64   `json:"price"`
	CreatedDate time.Time  `json:"created_date"`
	NextDate    *time.Time `json:"next_date"`
	Status      string     `gorm:"size:50;default:Waiting" json:"status"`
	StatusType  *string    `json:"status_type"`
	UserID      uint       `gorm:"not null;index"        json:"user_id"`
	User        *User      `gorm:"foreignKey:UserID"     json:"-"`
}

const (
	StatusWaiting   = "Waiting"
	StatusCompleted = "Completed"
)
