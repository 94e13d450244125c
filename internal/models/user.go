package models

import (
	"time"
)

// Role types for users
const (
	RoleAdmin  = "admin"
	RoleJamaah = "jamaah"
)

// User represents the users table
type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"column:username;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password;not null"`
	FullName  string    `json:"full_name" gorm:"column:full_name"`
	Role      string    `json:"role" gorm:"column:role;default:jamaah"`
	RT        *string   `json:"rt,omitempty" gorm:"column:rt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin capability
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
