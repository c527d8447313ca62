package models

import (
	"time"

	"gigbook/money"
)

// Derived work status
const (
	WorkDone       = "done"
	WorkInProgress = "in_progress"
)

// Derived money status
const (
	MoneyPaid        = "paid"
	MoneyInvoiceSent = "invoice_sent"
	MoneyNoInvoice   = "no_invoice"
)

// Combined display status; DisplayNone means a future entry renders with no
// status badge at all.
const (
	DisplayPaid = "paid"
	DisplaySent = "sent"
	DisplayDone = "done"
	DisplayNone = ""
)

// OverdueAfterDays is the grace period for a sent invoice. A sent date of
// exactly OverdueAfterDays days ago is still on time.
const OverdueAfterDays = 30

// DateOnly truncates a timestamp to its calendar day. All status and KPI
// comparisons happen at day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns whole calendar days from a to b (negative when b is
// before a). Both sides are normalized to midnight first so DST shifts
// cannot move the boundary.
func DaysBetween(a, b time.Time) int {
	a = DateOnly(a)
	b = DateOnly(b)
	return int(b.Sub(a).Hours() / 24)
}

// WorkStatus derives whether the work itself is behind us: done when the
// entry date is strictly before today. There is no manual override.
func (e *Entry) WorkStatus(today time.Time) string {
	if DateOnly(e.WorkDate).Before(DateOnly(today)) {
		return WorkDone
	}
	return WorkInProgress
}

// MoneyStatus derives the invoicing axis from the raw facts
func (e *Entry) MoneyStatus() string {
	switch {
	case e.PaymentStatus == PaymentPaid || e.InvoiceStatus == InvoicePaid:
		return MoneyPaid
	case e.InvoiceStatus == InvoiceSent:
		return MoneyInvoiceSent
	default:
		return MoneyNoInvoice
	}
}

// DisplayStatus combines both axes in precedence order:
// paid > sent > done > none.
func (e *Entry) DisplayStatus(today time.Time) string {
	switch {
	case e.PaymentStatus == PaymentPaid || e.InvoiceStatus == InvoicePaid:
		return DisplayPaid
	case e.InvoiceStatus == InvoiceSent:
		return DisplaySent
	case e.WorkStatus(today) == WorkDone:
		return DisplayDone
	default:
		return DisplayNone
	}
}

// IsOverdue reports whether a sent invoice has waited more than
// OverdueAfterDays days for payment. Entries without a sent date, and
// already-paid entries, are never overdue.
func (e *Entry) IsOverdue(today time.Time) bool {
	if e.InvoiceStatus != InvoiceSent || e.PaymentStatus == PaymentPaid || e.InvoiceSentDate == nil {
		return false
	}
	return DaysBetween(*e.InvoiceSentDate, today) > OverdueAfterDays
}

// ApplyStatus moves the entry to a target display status. Every transition
// is valid from any prior state and is idempotent; the only fact preserved
// across re-entry is an existing invoice sent date.
func (e *Entry) ApplyStatus(target string, today time.Time) {
	day := DateOnly(today)
	switch target {
	case DisplayPaid:
		e.InvoiceStatus = InvoicePaid
		e.PaymentStatus = PaymentPaid
		e.PaidDate = &day
		e.AmountPaid = money.Round2(e.AmountGross)
	case DisplaySent:
		e.InvoiceStatus = InvoiceSent
		e.PaymentStatus = PaymentUnpaid
		e.PaidDate = nil
		e.AmountPaid = 0
		if e.InvoiceSentDate == nil {
			e.InvoiceSentDate = &day
		}
	default: // back to draft ("done" is the derived look of an uninvoiced past entry)
		e.InvoiceStatus = InvoiceDraft
		e.PaymentStatus = PaymentUnpaid
		e.InvoiceSentDate = nil
		e.PaidDate = nil
		e.AmountPaid = 0
	}
}
