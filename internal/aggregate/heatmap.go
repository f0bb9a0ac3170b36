package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skint-dev/skint/internal/cycle"
	"github.com/skint-dev/skint/internal/model"
)

// WeekdayNames are the bucket labels, Monday first.
var WeekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MondayIndex remaps Go's Sunday-first weekday numbering to a Monday-first
// index: Monday is 0, Sunday is 6.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// DayBucket is one weekday's spending profile.
type DayBucket struct {
	Day       string
	Total     decimal.Decimal
	Count     int
	Average   decimal.Decimal
	Intensity float64 // total normalized to the busiest bucket, 0-1
}

// Heatmap buckets non-hidden expenses in the window into the seven weekdays,
// Monday first. Intensity is each bucket's total over the maximum bucket
// total; an all-empty week has zero intensity everywhere.
func Heatmap(txs []model.Transaction, w cycle.Window) [7]DayBucket {
	var buckets [7]DayBucket
	for i := range buckets {
		buckets[i].Day = WeekdayNames[i]
		buckets[i].Total = decimal.Zero
		buckets[i].Average = decimal.Zero
	}

	for _, tx := range inWindow(txs, w, model.TypeExpense) {
		i := MondayIndex(tx.Date.Weekday())
		buckets[i].Total = buckets[i].Total.Add(tx.Amount.Abs())
		buckets[i].Count++
	}

	maxTotal := decimal.Zero
	for _, b := range buckets {
		if b.Total.GreaterThan(maxTotal) {
			maxTotal = b.Total
		}
	}
	for i := range buckets {
		if buckets[i].Count > 0 {
			buckets[i].Average = buckets[i].Total.Div(decimal.NewFromInt(int64(buckets[i].Count)))
		}
		if maxTotal.IsPositive() {
			buckets[i].Intensity, _ = buckets[i].Total.Div(maxTotal).Float64()
		}
	}
	return buckets
}

// BusiestDay returns the bucket with the highest total. The second result is
// false when every bucket is empty.
func BusiestDay(buckets [7]DayBucket) (DayBucket, bool) {
	best := buckets[0]
	any := false
	for _, b := range buckets {
		if b.Count > 0 {
			any = true
		}
		if b.Total.GreaterThan(best.Total) {
			best = b
		}
	}
	return best, any
}
