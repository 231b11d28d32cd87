package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type User struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	Email     string         `json:"email" gorm:"uniqueIndex;size:150"`
	Password  string         `json:"-" gorm:"size:255"` // bcrypt hash, never returned
	Role      string         `json:"role" gorm:"size:32"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
