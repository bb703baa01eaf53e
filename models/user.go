package models

import (
	"time"
)

// Role is the closed set of account roles. It is assigned at registration
// (always BUYER) or by seed data and never changes through the API.
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:150" json:"email"`
	Password  string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role      Role      `gorm:"size:16;default:BUYER" json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Properties   []Property    `gorm:"foreignKey:SellerID" json:"properties,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:UserID" json:"reservations,omitempty"`
}
