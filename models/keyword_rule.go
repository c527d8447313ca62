package models

import (
	"time"

	"gorm.io/gorm"
)

// Rule categories
const (
	RuleWork     = "work"
	RulePersonal = "personal"
)

// KeywordRule is a user-editable classifier rule: calendar-event titles
// containing the keyword are classified into the rule's category. Work rules
// may carry a client suggestion for the import form.
type KeywordRule struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Category  string         `json:"category" gorm:"size:20;not null;index"` // work/personal
	Keyword   string         `json:"keyword" gorm:"size:80;not null"`
	Client    string         `json:"client" gorm:"size:120"` // optional suggested client
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (KeywordRule) TableName() string {
	return "keyword_rules"
}
