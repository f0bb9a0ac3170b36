package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType distinguishes money in from money out.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// Transaction is one dated money movement in the ledger.
//
// Amount is always the absolute value; the sign a bank export carried is
// consumed during type inference and never stored.
type Transaction struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TxType          `json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"` // midnight UTC, no time component
	Essential   bool            `json:"essential"`
}

// Day truncates t to midnight UTC so date-only comparisons are exact.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
