package models

// User is a clinic account. Name is the login identifier and must be
// globally unique. Password always holds a bcrypt hash, never plaintext,
// and is excluded from JSON serialisation.
type User struct {
	ID       uint    `gorm:"primaryKey"                 json:"id"`
	Name     string  `gorm:"uniqueIndex;size:20;not null" json:"name"`
	FullName string  `gorm:"size:50;not null"           json:"full_name"`
	Phone    string  `gorm:"size:15;not null"           json:"phone"`
	Password string  `gorm:"not null"                   json:"-"`
	Role     string  `gorm:"size:20;default:User"       json:"role"`
	Orders   []Order `gorm:"foreignKey:UserID"          json:"-"`
}

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)
