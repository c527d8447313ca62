// Package stats aggregates entry collections into dashboard KPIs and chart
// series. Every function is a pure projection of its inputs plus a
// caller-supplied "today"; callers fetch the collections from storage.
package stats

import (
	"time"

	"gigbook/models"
	"gigbook/money"
)

// KPI is the dashboard headline set for one target month. Outstanding,
// ready-to-invoice, overdue and invoiced counts deliberately span all time
// (backlog visibility across months); the this-month figures are scoped to
// the target month.
type KPI struct {
	Outstanding         float64 `json:"outstanding"`
	ReadyToInvoice      float64 `json:"ready_to_invoice"`
	ReadyToInvoiceCount int     `json:"ready_to_invoice_count"`
	ThisMonth           float64 `json:"this_month"`
	ThisMonthCount      int     `json:"this_month_count"`
	TotalPaid           float64 `json:"total_paid"`
	Trend               float64 `json:"trend"`
	OverdueCount        int     `json:"overdue_count"`
	InvoicedCount       int     `json:"invoiced_count"`
}

// InMonth reports whether a date falls inside the given calendar month
func InMonth(d time.Time, year int, month time.Month) bool {
	return d.Year() == year && d.Month() == month
}

// ComputeKPI aggregates the full entry collection for the target month.
// An empty collection yields an all-zero KPI, never an error.
func ComputeKPI(entries []models.Entry, today time.Time, year int, month time.Month) KPI {
	var kpi KPI

	prevYear, prevMonth := previousMonth(year, month)

	var outstanding, ready, thisMonth, paidThisMonth, paidPrevMonth []float64
	for i := range entries {
		e := &entries[i]

		if e.InvoiceStatus == models.InvoiceSent && e.PaymentStatus != models.PaymentPaid {
			outstanding = append(outstanding, money.Sub(e.AmountGross, e.AmountPaid))
			kpi.InvoicedCount++
		}

		if e.WorkStatus(today) == models.WorkDone &&
			e.InvoiceStatus == models.InvoiceDraft &&
			e.PaymentStatus != models.PaymentPaid {
			ready = append(ready, e.AmountGross)
			kpi.ReadyToInvoiceCount++
		}

		if e.IsOverdue(today) {
			kpi.OverdueCount++
		}

		if InMonth(e.WorkDate, year, month) {
			thisMonth = append(thisMonth, e.AmountGross)
			kpi.ThisMonthCount++
			if e.PaymentStatus == models.PaymentPaid {
				paidThisMonth = append(paidThisMonth, e.AmountPaid)
			}
		}
		if InMonth(e.WorkDate, prevYear, prevMonth) && e.PaymentStatus == models.PaymentPaid {
			paidPrevMonth = append(paidPrevMonth, e.AmountPaid)
		}
	}

	kpi.Outstanding = money.Sum(outstanding)
	kpi.ReadyToInvoice = money.Sum(ready)
	kpi.ThisMonth = money.Sum(thisMonth)
	kpi.TotalPaid = money.Sum(paidThisMonth)
	kpi.Trend = trend(kpi.TotalPaid, money.Sum(paidPrevMonth))
	return kpi
}

// trend is the month-over-month percentage change of paid totals. A zero
// previous month is defined as 0, not infinity.
func trend(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	pct, err := money.Div(money.Mul(money.Sub(current, previous), 100), previous)
	if err != nil {
		return 0
	}
	return pct
}

func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
