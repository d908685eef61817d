package model

import (
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"size:20;not null;default:'student'" json:"role"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `json:"lastLogin"`
	LastSeen  time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
