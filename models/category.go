package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups entries for reporting
type Category struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Color      string         `json:"color" gorm:"size:20;default:#64748b"` // hex color, e.g. #ef4444
	Icon       string         `json:"icon" gorm:"size:30;default:briefcase"`
	Sort       int            `json:"sort" gorm:"default:0;index"`
	IsArchived bool           `json:"is_archived" gorm:"default:false;index"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryStyle is the display metadata attached to a category name
type CategoryStyle struct {
	Color string
	Icon  string
}

// DefaultCategoryStyle is the explicit no-match fallback
var DefaultCategoryStyle = CategoryStyle{Color: "#64748b", Icon: "briefcase"}

// legacy Hebrew category names mapped to their display style; kept as a
// static table so imported spreadsheets keep their colors
var categoryStyles = map[string]CategoryStyle{
	"הוראה":   {Color: "#3b82f6", Icon: "book"},
	"ייעוץ":   {Color: "#a855f7", Icon: "lightbulb"},
	"פיתוח":   {Color: "#10b981", Icon: "code"},
	"עיצוב":   {Color: "#ec4899", Icon: "pen"},
	"כתיבה":   {Color: "#f59e0b", Icon: "file-text"},
	"תרגום":   {Color: "#14b8a6", Icon: "globe"},
	"הרצאות":  {Color: "#ef4444", Icon: "mic"},
	"אחר":     {Color: "#64748b", Icon: "briefcase"},
}

// LookupCategoryStyle returns the style for a category name and whether the
// name was found; unknown names get DefaultCategoryStyle.
func LookupCategoryStyle(name string) (CategoryStyle, bool) {
	if s, ok := categoryStyles[name]; ok {
		return s, true
	}
	return DefaultCategoryStyle, false
}

// DefaultCategoryNames returns the seed categories in display order
func DefaultCategoryNames() []string {
	return []string{"הוראה", "ייעוץ", "פיתוח", "עיצוב", "כתיבה", "תרגום", "הרצאות", "אחר"}
}
