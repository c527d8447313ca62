package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a payer referenced by entries. Merges re-point entries and
// archive the losing records; clients are never hard-deleted so the audit
// trail survives.
type Client struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"index;not null;uniqueIndex:idx_clients_owner_name"`
	Name         string         `json:"name" gorm:"size:120;not null;uniqueIndex:idx_clients_owner_name"`
	Email        string         `json:"email" gorm:"size:100"`
	Phone        string         `json:"phone" gorm:"size:30"`
	DefaultRate  float64        `json:"default_rate" gorm:"type:decimal(10,2);default:0"`
	IsArchived   bool           `json:"is_archived" gorm:"default:false;index"`
	DisplayOrder int            `json:"display_order" gorm:"default:0;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (Client) TableName() string {
	return "clients"
}
