// Package project extrapolates a daily burn rate from historical expense
// density and walks a balance forward to find the day it runs out.
package project

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skint-dev/skint/internal/model"
)

// DefaultHorizonDays is used when the caller does not choose a horizon.
const DefaultHorizonDays = 30

// dangerRatio flags days where the balance has fallen below this share of
// the starting balance.
var dangerRatio = decimal.NewFromFloat(0.2)

// Day is one step of the projection. Balance is clamped at zero for
// display; Danger reflects the unclamped trajectory.
type Day struct {
	Date    time.Time
	Label   string // "Today", "Day 1", ...
	Balance decimal.Decimal
	Danger  bool
}

// Result is a balance projection. When HasData is false there were no
// non-hidden expenses to derive a rate from and the other fields are zero;
// that is a defined empty result, not an error.
type Result struct {
	HasData   bool
	DailyRate decimal.Decimal
	Days      []Day
	Broke     bool // a day within the horizon reached zero or below
	BrokeDay  int  // first such day index; only meaningful when Broke
}

// Balance projects startingBalance forward horizonDays from today. The
// daily rate is total non-hidden expense divided by the day span from the
// earliest to the latest expense in the input (minimum one day), not the
// horizon. The series has horizonDays+1 entries, day 0 being today.
func Balance(txs []model.Transaction, startingBalance decimal.Decimal, horizonDays int, today time.Time) Result {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	var expenses []model.Transaction
	for _, tx := range txs {
		if tx.Type == model.TypeExpense && !model.Hidden(tx.Category) {
			expenses = append(expenses, tx)
		}
	}
	if len(expenses) == 0 {
		return Result{}
	}

	earliest, latest := model.Day(expenses[0].Date), model.Day(expenses[0].Date)
	total := decimal.Zero
	for _, tx := range expenses {
		d := model.Day(tx.Date)
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
		total = total.Add(tx.Amount.Abs())
	}

	rangeDays := int(latest.Sub(earliest) / (24 * time.Hour))
	if rangeDays < 1 {
		rangeDays = 1
	}
	rate := total.Div(decimal.NewFromInt(int64(rangeDays)))

	res := Result{HasData: true, DailyRate: rate}
	dangerLine := startingBalance.Mul(dangerRatio)
	start := model.Day(today)

	for i := 0; i <= horizonDays; i++ {
		unclamped := startingBalance.Sub(rate.Mul(decimal.NewFromInt(int64(i))))

		if !res.Broke && unclamped.LessThanOrEqual(decimal.Zero) {
			res.Broke = true
			res.BrokeDay = i
		}

		display := unclamped
		if display.IsNegative() {
			display = decimal.Zero
		}
		label := "Today"
		if i > 0 {
			label = fmt.Sprintf("Day %d", i)
		}
		res.Days = append(res.Days, Day{
			Date:    start.AddDate(0, 0, i),
			Label:   label,
			Balance: display,
			Danger:  unclamped.LessThan(dangerLine),
		})
	}
	return res
}
