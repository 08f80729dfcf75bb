package model

import "time"

// Roles assignable to a user.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a community member account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;default:'member';index"`
	Phone        string    `json:"phone,omitempty" gorm:"size:50"`
	JoinDate     time.Time `json:"join_date" gorm:"autoCreateTime"`
	Active       bool      `json:"is_active" gorm:"default:true;index"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
