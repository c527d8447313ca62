package stats

import (
	"sort"

	"gigbook/models"
)

// Needs-attention labels shown next to each flagged entry
const (
	AttentionNoInvoice     = "no invoice"
	AttentionAwaitingPay   = "sent - awaiting payment"
	AttentionPartiallyPaid = "sent - partially paid"
)

// AttentionItem is one entry that still needs invoicing or chasing
type AttentionItem struct {
	Entry models.Entry `json:"entry"`
	Label string       `json:"label"`
}

// NeedsAttention flags entries that are drafts or sent-but-unpaid, largest
// amounts first (stable on ties).
func NeedsAttention(entries []models.Entry) []AttentionItem {
	items := make([]AttentionItem, 0)
	for i := range entries {
		e := entries[i]
		switch {
		case e.InvoiceStatus == models.InvoiceDraft:
			items = append(items, AttentionItem{Entry: e, Label: AttentionNoInvoice})
		case e.InvoiceStatus == models.InvoiceSent && e.PaymentStatus == models.PaymentPartial:
			items = append(items, AttentionItem{Entry: e, Label: AttentionPartiallyPaid})
		case e.InvoiceStatus == models.InvoiceSent && e.PaymentStatus != models.PaymentPaid:
			items = append(items, AttentionItem{Entry: e, Label: AttentionAwaitingPay})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Entry.AmountGross > items[j].Entry.AmountGross
	})
	return items
}
