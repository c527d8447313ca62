package stats

import (
	"fmt"
	"sort"
	"time"

	"gigbook/models"
	"gigbook/money"
)

// UncategorizedLabel names the bucket for entries with no resolved category
const UncategorizedLabel = "uncategorized"

// OtherLabel names the collapsed remainder bucket in category breakdowns
const OtherLabel = "other"

// MaxCategoryBuckets keeps the breakdown readable; anything past the top 5
// collapses into the "other" bucket.
const MaxCategoryBuckets = 5

// monthlyBucketThresholdDays switches the chart from weekly to monthly
// buckets once a range spans more than 60 days.
const monthlyBucketThresholdDays = 60

// TimeBucket is one chart point over an inclusive date range
type TimeBucket struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Total float64   `json:"total"`
	Count int       `json:"count"`
}

// CategoryBucket is one slice of the category breakdown
type CategoryBucket struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// TimeBuckets groups entries over [start, end] for charting: calendar
// months when the range spans more than 60 days, otherwise Sunday-start
// weeks. Every bucket in the range is emitted, empty ones included, in
// chronological order.
func TimeBuckets(entries []models.Entry, start, end time.Time) []TimeBucket {
	start = models.DateOnly(start)
	end = models.DateOnly(end)
	if end.Before(start) {
		return []TimeBucket{}
	}

	var buckets []TimeBucket
	if models.DaysBetween(start, end) > monthlyBucketThresholdDays {
		buckets = monthBuckets(start, end)
	} else {
		buckets = weekBuckets(start, end)
	}

	sums := make([][]float64, len(buckets))
	for i := range entries {
		d := models.DateOnly(entries[i].WorkDate)
		for b := range buckets {
			if !d.Before(buckets[b].Start) && !d.After(buckets[b].End) {
				sums[b] = append(sums[b], entries[i].AmountGross)
				buckets[b].Count++
				break
			}
		}
	}
	for b := range buckets {
		buckets[b].Total = money.Sum(sums[b])
	}
	return buckets
}

func monthBuckets(start, end time.Time) []TimeBucket {
	var out []TimeBucket
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for !cur.After(end) {
		next := cur.AddDate(0, 1, 0)
		out = append(out, TimeBucket{
			Label: cur.Format("2006-01"),
			Start: cur,
			End:   next.AddDate(0, 0, -1),
		})
		cur = next
	}
	return out
}

func weekBuckets(start, end time.Time) []TimeBucket {
	// back up to the Sunday on or before the range start
	cur := start.AddDate(0, 0, -int(start.Weekday()))
	var out []TimeBucket
	for !cur.After(end) {
		weekEnd := cur.AddDate(0, 0, 6)
		out = append(out, TimeBucket{
			Label: fmt.Sprintf("%s - %s", cur.Format("Jan 2"), weekEnd.Format("Jan 2")),
			Start: cur,
			End:   weekEnd,
		})
		cur = cur.AddDate(0, 0, 7)
	}
	return out
}

// CategoryBuckets groups entries by resolved category name (the joined
// category's name, or "uncategorized"), sorted by summed amount descending.
// With more than 5 distinct categories the tail collapses into "other";
// ties keep first-encountered order.
func CategoryBuckets(entries []models.Entry) []CategoryBucket {
	sums := make(map[string][]float64)
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range entries {
		name := UncategorizedLabel
		if entries[i].Category != nil && entries[i].Category.Name != "" {
			name = entries[i].Category.Name
		}
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] = append(sums[name], entries[i].AmountGross)
		counts[name]++
	}

	all := make([]CategoryBucket, 0, len(order))
	for _, name := range order {
		all = append(all, CategoryBucket{Category: name, Total: money.Sum(sums[name]), Count: counts[name]})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Total > all[j].Total })

	if len(all) <= MaxCategoryBuckets {
		return all
	}
	top := all[:MaxCategoryBuckets]
	var otherAmounts []float64
	otherCount := 0
	for _, b := range all[MaxCategoryBuckets:] {
		otherAmounts = append(otherAmounts, b.Total)
		otherCount += b.Count
	}
	return append(top, CategoryBucket{Category: OtherLabel, Total: money.Sum(otherAmounts), Count: otherCount})
}
