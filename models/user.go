package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// UserStatusLocked blocks login until an operator activates the account
	UserStatusLocked = "locked"
	// UserStatusActive allows login
	UserStatusActive = "active"
)

// User owns entries, clients, categories and classifier rules
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"size:100"`
	Status    string         `json:"status" gorm:"size:20;default:locked;index"` // locked/active
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (User) TableName() string {
	return "users"
}
