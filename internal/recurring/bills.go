package recurring

import (
	"time"

	"github.com/skint-dev/skint/internal/model"
)

// NextDueOnDay computes when a declared day-of-month obligation next falls:
// the declared day in the current month, rolling to next month once passed.
// Day 29-31 clamps to the last day of months that are shorter, so a bill on
// the 31st lands on April 30th rather than overflowing into May.
func NextDueOnDay(dayOfMonth int, today time.Time) time.Time {
	now := model.Day(today)

	due := dayInMonth(now.Year(), now.Month(), dayOfMonth)
	if due.Before(now) {
		due = dayInMonth(now.Year(), now.Month()+1, dayOfMonth)
	}
	return due
}

// BillNextDue computes the next due date for a user-declared bill.
func BillNextDue(b model.RecurringBill, today time.Time) time.Time {
	return NextDueOnDay(b.DayOfMonth, today)
}

// CardNextDue computes the next payment date for a credit card.
func CardNextDue(c model.CreditCard, today time.Time) time.Time {
	return NextDueOnDay(c.DueDay, today)
}

func dayInMonth(year int, month time.Month, day int) time.Time {
	// Normalize a possible month 13 via a first-of-month date.
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if limit := daysInMonth(first.Year(), first.Month()); day > limit {
		day = limit
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
