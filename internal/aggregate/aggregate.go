// Package aggregate computes cycle-scoped statistics over a transaction
// list. Every function here is pure: it filters to the non-hidden subset,
// never mutates its input, and returns an explicit empty result when there is
// no data.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skint-dev/skint/internal/cycle"
	"github.com/skint-dev/skint/internal/model"
)

// hundred is reused for percentage math.
var hundred = decimal.NewFromInt(100)

// inWindow returns non-hidden transactions of the given type inside the
// window. A zero Window (no bounds) means all time.
func inWindow(txs []model.Transaction, w cycle.Window, txType model.TxType) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if model.Hidden(tx.Category) || tx.Type != txType {
			continue
		}
		if !w.Start.IsZero() && !w.Contains(tx.Date) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func sum(txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount.Abs())
	}
	return total
}

// CycleIncome sums non-hidden income inside the window.
func CycleIncome(txs []model.Transaction, w cycle.Window) decimal.Decimal {
	return sum(inWindow(txs, w, model.TypeIncome))
}

// CycleExpense sums non-hidden expenses inside the window.
func CycleExpense(txs []model.Transaction, w cycle.Window) decimal.Decimal {
	return sum(inWindow(txs, w, model.TypeExpense))
}

// AvailableCash is cycle income minus cycle expense.
func AvailableCash(txs []model.Transaction, w cycle.Window) decimal.Decimal {
	return CycleIncome(txs, w).Sub(CycleExpense(txs, w))
}

// CategoryTotal is one category's share of a spend breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Percent  decimal.Decimal // of the summed total, 0-100
}

// CategoryTotals groups non-hidden expenses in the window by category,
// sorted by total descending, with each category's share of the summed
// total. An empty input yields an empty slice, not an error.
func CategoryTotals(txs []model.Transaction, w cycle.Window) []CategoryTotal {
	expenses := inWindow(txs, w, model.TypeExpense)
	if len(expenses) == 0 {
		return nil
	}
	totals := map[string]decimal.Decimal{}
	var order []string
	for _, tx := range expenses {
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount.Abs())
	}
	grand := decimal.Zero
	for _, t := range totals {
		grand = grand.Add(t)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		pct := decimal.Zero
		if grand.IsPositive() {
			pct = totals[cat].Div(grand).Mul(hundred)
		}
		out = append(out, CategoryTotal{Category: cat, Total: totals[cat], Percent: pct})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// TopCategory returns the category with the highest non-hidden expense total
// in the window. The second result is false when there are no expenses.
func TopCategory(txs []model.Transaction, w cycle.Window) (CategoryTotal, bool) {
	totals := CategoryTotals(txs, w)
	if len(totals) == 0 {
		return CategoryTotal{}, false
	}
	return totals[0], true
}

// TopSpends returns the n largest non-hidden expenses in the window.
func TopSpends(txs []model.Transaction, w cycle.Window, n int) []model.Transaction {
	expenses := inWindow(txs, w, model.TypeExpense)
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount.GreaterThan(expenses[j].Amount)
	})
	if len(expenses) > n {
		expenses = expenses[:n]
	}
	return expenses
}

// Survival partitions cycle expenses into essential and discretionary.
type Survival struct {
	Essential        decimal.Decimal
	Discretionary    decimal.Decimal
	Total            decimal.Decimal
	ByCategory       []CategoryTotal // essential portion only, sorted desc
	Income           decimal.Decimal
	PotentialSavings decimal.Decimal // max(income - essential, 0)
}

// EssentialSplit computes the essential/discretionary partition for the
// window. Essential + Discretionary always equals Total exactly.
func EssentialSplit(txs []model.Transaction, w cycle.Window) Survival {
	expenses := inWindow(txs, w, model.TypeExpense)

	s := Survival{
		Essential:     decimal.Zero,
		Discretionary: decimal.Zero,
	}
	essTotals := map[string]decimal.Decimal{}
	var essOrder []string
	for _, tx := range expenses {
		amt := tx.Amount.Abs()
		if tx.Essential {
			s.Essential = s.Essential.Add(amt)
			if _, seen := essTotals[tx.Category]; !seen {
				essOrder = append(essOrder, tx.Category)
			}
			essTotals[tx.Category] = essTotals[tx.Category].Add(amt)
		} else {
			s.Discretionary = s.Discretionary.Add(amt)
		}
	}
	s.Total = s.Essential.Add(s.Discretionary)

	for _, cat := range essOrder {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Category: cat, Total: essTotals[cat]})
	}
	sort.SliceStable(s.ByCategory, func(i, j int) bool {
		return s.ByCategory[i].Total.GreaterThan(s.ByCategory[j].Total)
	})

	s.Income = CycleIncome(txs, w)
	s.PotentialSavings = s.Income.Sub(s.Essential)
	if s.PotentialSavings.IsNegative() {
		s.PotentialSavings = decimal.Zero
	}
	return s
}

// NoSpendDays counts calendar days in the window with zero non-hidden
// expense activity. For the cycle containing today the count stops at today;
// past cycles cover the whole window. Every day in range is visited, so days
// without any transactions at all count too.
func NoSpendDays(txs []model.Transaction, w cycle.Window, today time.Time) int {
	spendDates := map[time.Time]bool{}
	for _, tx := range inWindow(txs, w, model.TypeExpense) {
		spendDates[model.Day(tx.Date)] = true
	}

	end := w.End
	if now := model.Day(today); w.Contains(now) && now.Before(end) {
		end = now
	}

	count := 0
	for d := w.Start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !spendDates[d] {
			count++
		}
	}
	return count
}

// DistinctSpendDays counts the dates in the window with at least one
// non-hidden expense.
func DistinctSpendDays(txs []model.Transaction, w cycle.Window) int {
	dates := map[time.Time]bool{}
	for _, tx := range inWindow(txs, w, model.TypeExpense) {
		dates[model.Day(tx.Date)] = true
	}
	return len(dates)
}
