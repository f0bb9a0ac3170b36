package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Frequency is the cadence of a recurring payment.
type Frequency string

const (
	Monthly     Frequency = "monthly"
	Fortnightly Frequency = "fortnightly"
	Weekly      Frequency = "weekly"
)

// PeriodsPerYear returns how many payments a year holds at this cadence.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case Fortnightly:
		return 26
	case Weekly:
		return 52
	default:
		return 12
	}
}

// PeriodDays returns the day length of one period. Monthly is approximate and
// callers advancing monthly dates must use calendar months, not this value.
func (f Frequency) PeriodDays() int {
	switch f {
	case Fortnightly:
		return 14
	case Weekly:
		return 7
	default:
		return 28
	}
}

// RecurringBill is a user-declared bill. Unlike detected recurring payments it
// is persisted and independent of ledger contents.
type RecurringBill struct {
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	DayOfMonth int             `json:"dayOfMonth"`
	Frequency  Frequency       `json:"frequency"`
}

// Validate rejects a bill before it enters persisted state.
func (b RecurringBill) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("bill name is required")
	}
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("bill amount must be positive")
	}
	if b.DayOfMonth < 1 || b.DayOfMonth > 31 {
		return fmt.Errorf("day of month %d out of range 1-31", b.DayOfMonth)
	}
	switch b.Frequency {
	case Monthly, Fortnightly, Weekly, "":
	default:
		return fmt.Errorf("unknown frequency %q", b.Frequency)
	}
	return nil
}

// CreditCard is a persisted card record tracked alongside the ledger.
type CreditCard struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Limit   decimal.Decimal `json:"limit"`
	DueDay  int             `json:"dueDay"`
}

// Validate rejects a card before it enters persisted state.
func (c CreditCard) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("card name is required")
	}
	if c.Balance.IsNegative() {
		return fmt.Errorf("card balance cannot be negative")
	}
	if c.Limit.IsNegative() {
		return fmt.Errorf("card limit cannot be negative")
	}
	if c.DueDay < 1 || c.DueDay > 31 {
		return fmt.Errorf("due day %d out of range 1-31", c.DueDay)
	}
	return nil
}
