// Package ledger owns the single source of truth: the ordered transaction
// list plus the budget scalars and persisted bill/card records. Callers hold
// one Ledger and thread it through the engine; there is no ambient state.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skint-dev/skint/internal/model"
)

// DefaultBudget is the monthly budget used until the user saves one.
var DefaultBudget = decimal.NewFromInt(1000)

// dupAmountTolerance is the import dedup amount window. Two transactions on
// the same date with the same description within this window are treated as
// one. Distinct same-day same-amount purchases from one merchant are
// indistinguishable from re-imports under this key; that looseness is kept
// deliberately, since tightening it would re-admit pending/settled pairs
// that bank exports produce.
var dupAmountTolerance = decimal.NewFromFloat(0.01)

// Ledger is the whole persisted state of one user.
type Ledger struct {
	Transactions []model.Transaction   `json:"transactions"`
	NextID       int                   `json:"nextId"`
	Budget       decimal.Decimal       `json:"budget"`
	Balance      decimal.Decimal       `json:"balance"`
	TotalSavings decimal.Decimal       `json:"totalSavings"`
	ShowHidden   bool                  `json:"showHidden"`
	Bills        []model.RecurringBill `json:"bills"`
	Cards        []model.CreditCard    `json:"cards"`
}

// New returns an empty ledger with default settings.
func New() *Ledger {
	return &Ledger{
		NextID: 1,
		Budget: DefaultBudget,
	}
}

// AddParams holds the fields for a new transaction. Amount must already be
// the absolute value.
type AddParams struct {
	Description string
	Amount      decimal.Decimal
	Type        model.TxType
	Category    string
	Date        time.Time
	Essential   bool
}

// Add appends a transaction, assigning the next id, and keeps the ledger
// sorted newest first.
func (l *Ledger) Add(p AddParams) model.Transaction {
	tx := model.Transaction{
		ID:          l.NextID,
		Description: p.Description,
		Amount:      p.Amount.Abs(),
		Type:        p.Type,
		Category:    p.Category,
		Date:        model.Day(p.Date),
		Essential:   p.Essential,
	}
	l.NextID++
	l.Transactions = append(l.Transactions, tx)
	l.sortByDateDesc()
	return tx
}

// Find returns a pointer into the ledger for in-place mutation, or nil.
func (l *Ledger) Find(id int) *model.Transaction {
	for i := range l.Transactions {
		if l.Transactions[i].ID == id {
			return &l.Transactions[i]
		}
	}
	return nil
}

// Delete removes the transaction with the given id.
func (l *Ledger) Delete(id int) bool {
	for i := range l.Transactions {
		if l.Transactions[i].ID == id {
			l.Transactions = append(l.Transactions[:i], l.Transactions[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleEssential flips the essential flag on one transaction.
func (l *Ledger) ToggleEssential(id int) bool {
	tx := l.Find(id)
	if tx == nil {
		return false
	}
	tx.Essential = !tx.Essential
	return true
}

// SetCategory reassigns a transaction's category. Assigning Salary forces the
// income type and assigning an auto-essential category forces the essential
// flag on; both are one-directional, so moving away again unsets neither.
func (l *Ledger) SetCategory(id int, category string) error {
	if !model.Known(category) {
		return fmt.Errorf("unknown category %q", category)
	}
	tx := l.Find(id)
	if tx == nil {
		return fmt.Errorf("no transaction with id %d", id)
	}
	tx.Category = category
	if category == model.CatSalary {
		tx.Type = model.TypeIncome
	}
	if model.AutoEssential(category) {
		tx.Essential = true
	}
	return nil
}

// HasDuplicate reports whether an existing entry matches on exact date, exact
// description, and amount within the dedup tolerance.
func (l *Ledger) HasDuplicate(date time.Time, description string, amount decimal.Decimal) bool {
	d := model.Day(date)
	for _, tx := range l.Transactions {
		if tx.Description == description &&
			tx.Date.Equal(d) &&
			tx.Amount.Sub(amount).Abs().LessThan(dupAmountTolerance) {
			return true
		}
	}
	return false
}

// Visible returns the transactions included in budget views: everything when
// ShowHidden is set, otherwise only non-hidden categories.
func (l *Ledger) Visible() []model.Transaction {
	if l.ShowHidden {
		return l.Transactions
	}
	var out []model.Transaction
	for _, tx := range l.Transactions {
		if !model.Hidden(tx.Category) {
			out = append(out, tx)
		}
	}
	return out
}

// HiddenCount returns how many transactions sit in hidden categories.
func (l *Ledger) HiddenCount() int {
	n := 0
	for _, tx := range l.Transactions {
		if model.Hidden(tx.Category) {
			n++
		}
	}
	return n
}

// Clear empties the transaction list and resets the id counter. Settings,
// bills and cards survive.
func (l *Ledger) Clear() {
	l.Transactions = nil
	l.NextID = 1
}

// AddBill validates and appends a user-declared recurring bill.
func (l *Ledger) AddBill(b model.RecurringBill) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.Frequency == "" {
		b.Frequency = model.Monthly
	}
	l.Bills = append(l.Bills, b)
	return nil
}

// RemoveBill deletes a declared bill by name.
func (l *Ledger) RemoveBill(name string) bool {
	for i, b := range l.Bills {
		if b.Name == name {
			l.Bills = append(l.Bills[:i], l.Bills[i+1:]...)
			return true
		}
	}
	return false
}

// AddCard validates and appends a credit card record.
func (l *Ledger) AddCard(c model.CreditCard) error {
	if err := c.Validate(); err != nil {
		return err
	}
	l.Cards = append(l.Cards, c)
	return nil
}

// RemoveCard deletes a card by name.
func (l *Ledger) RemoveCard(name string) bool {
	for i, c := range l.Cards {
		if c.Name == name {
			l.Cards = append(l.Cards[:i], l.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// Normalize repairs state loaded from older records: the id counter is
// advanced past the highest transaction id and dates are truncated.
func (l *Ledger) Normalize() {
	if l.NextID < 1 {
		l.NextID = 1
	}
	if l.Budget.IsZero() {
		l.Budget = DefaultBudget
	}
	for i := range l.Transactions {
		l.Transactions[i].Date = model.Day(l.Transactions[i].Date)
		l.Transactions[i].Amount = l.Transactions[i].Amount.Abs()
		if l.Transactions[i].ID >= l.NextID {
			l.NextID = l.Transactions[i].ID + 1
		}
	}
	l.sortByDateDesc()
}

func (l *Ledger) sortByDateDesc() {
	sort.SliceStable(l.Transactions, func(i, j int) bool {
		return l.Transactions[i].Date.After(l.Transactions[j].Date)
	})
}
