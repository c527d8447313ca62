package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice status values
const (
	InvoiceDraft     = "draft"
	InvoiceSent      = "sent"
	InvoicePaid      = "paid"
	InvoiceCancelled = "cancelled"
)

// Payment status values
const (
	PaymentUnpaid  = "unpaid"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// Entry is one unit of billable work: an amount, a work date and the raw
// invoicing/payment facts. Display status is derived on read (status.go),
// never stored.
type Entry struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	WorkDate        time.Time      `json:"work_date" gorm:"type:date;not null;index"`
	AmountGross     float64        `json:"amount_gross" gorm:"type:decimal(10,2);not null"`
	AmountPaid      float64        `json:"amount_paid" gorm:"type:decimal(10,2);not null;default:0"`
	VATRate         float64        `json:"vat_rate" gorm:"type:decimal(5,2);not null;default:18"` // percentage, e.g. 18
	IncludesVAT     bool           `json:"includes_vat" gorm:"default:true"`
	InvoiceStatus   string         `json:"invoice_status" gorm:"size:20;not null;default:draft;index"`  // draft/sent/paid/cancelled
	PaymentStatus   string         `json:"payment_status" gorm:"size:20;not null;default:unpaid;index"` // unpaid/partial/paid
	InvoiceSentDate *time.Time     `json:"invoice_sent_date" gorm:"type:date"`
	PaidDate        *time.Time     `json:"paid_date" gorm:"type:date"`
	ClientName      string         `json:"client_name" gorm:"size:120;index"`
	ClientID        *uint          `json:"client_id" gorm:"index"`
	CategoryID      *uint          `json:"category_id" gorm:"index"`
	Description     string         `json:"description" gorm:"size:255"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
	User            User           `json:"-" gorm:"foreignKey:UserID"`
	Client          *Client        `json:"-" gorm:"foreignKey:ClientID"`
	Category        *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName sets the table name
func (Entry) TableName() string {
	return "entries"
}
