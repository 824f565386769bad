package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name      string `json:"name" gorm:"default:''"`
	Email     string `json:"email" gorm:"unique;not null"` // immutable natural key
	Password  string `json:"password,omitempty" gorm:"not null"`
	Role      string `json:"role" gorm:"default:'student'"` // student, instructor, admin
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

// IsValidRole reports whether role is one of the known user roles
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleInstructor || role == RoleAdmin
}
