package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skint-dev/skint/internal/cycle"
	"github.com/skint-dev/skint/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(id int, desc string, amount string, typ model.TxType, cat string, d time.Time, essential bool) model.Transaction {
	return model.Transaction{
		ID: id, Description: desc, Amount: dec(amount),
		Type: typ, Category: cat, Date: d, Essential: essential,
	}
}

// A fixed past cycle: 2026-01-08 through 2026-02-04.
func window(t *testing.T) cycle.Window {
	t.Helper()
	cal := cycle.New(date(2026, 2, 5))
	w := cal.At(-1, date(2026, 2, 10))
	require.Equal(t, date(2026, 1, 8), w.Start)
	require.Equal(t, date(2026, 2, 4), w.End)
	return w
}

func sampleTxs() []model.Transaction {
	return []model.Transaction{
		tx(1, "PRIMARK STORES LTD", "1850.00", model.TypeIncome, model.CatSalary, date(2026, 1, 8), false),
		tx(2, "TRINITY ESTATES", "900.00", model.TypeExpense, model.CatRent, date(2026, 1, 9), true),
		tx(3, "TESCO STORES", "45.30", model.TypeExpense, model.CatGroceries, date(2026, 1, 12), true),
		tx(4, "NETFLIX.COM", "9.99", model.TypeExpense, model.CatSubscriptions, date(2026, 1, 15), false),
		tx(5, "PLUM DDR", "100.00", model.TypeExpense, model.CatSavings, date(2026, 1, 15), false),   // hidden
		tx(6, "DELIVEROO", "22.40", model.TypeExpense, model.CatTakeaway, date(2026, 2, 20), false),   // outside window
		tx(7, "REFUND", "10.00", model.TypeIncome, model.CatOther, date(2026, 1, 20), false),
	}
}

func TestCycleIncomeAndExpense(t *testing.T) {
	w := window(t)
	txs := sampleTxs()

	assert.True(t, CycleIncome(txs, w).Equal(dec("1860.00")))
	assert.True(t, CycleExpense(txs, w).Equal(dec("955.29")), "hidden and out-of-window excluded")
	assert.True(t, AvailableCash(txs, w).Equal(dec("904.71")))
}

func TestEssentialSplit_PartitionIsExact(t *testing.T) {
	w := window(t)
	txs := sampleTxs()

	s := EssentialSplit(txs, w)

	assert.True(t, s.Essential.Equal(dec("945.30")))
	assert.True(t, s.Discretionary.Equal(dec("9.99")))
	assert.True(t, s.Essential.Add(s.Discretionary).Equal(s.Total), "partition must be exact")
	assert.True(t, s.Total.Equal(CycleExpense(txs, w)))
	assert.True(t, s.PotentialSavings.Equal(dec("914.70")), "income minus essential spend")

	require.Len(t, s.ByCategory, 2)
	assert.Equal(t, model.CatRent, s.ByCategory[0].Category)
	assert.Equal(t, model.CatGroceries, s.ByCategory[1].Category)
}

func TestEssentialSplit_PotentialSavingsFloorsAtZero(t *testing.T) {
	w := window(t)
	txs := []model.Transaction{
		tx(1, "RENT", "900.00", model.TypeExpense, model.CatRent, date(2026, 1, 9), true),
		tx(2, "WAGES", "500.00", model.TypeIncome, model.CatSalary, date(2026, 1, 8), false),
	}
	s := EssentialSplit(txs, w)
	assert.True(t, s.PotentialSavings.IsZero())
}

func TestCategoryTotals_SortedWithPercentages(t *testing.T) {
	w := window(t)
	totals := CategoryTotals(sampleTxs(), w)

	require.Len(t, totals, 3)
	assert.Equal(t, model.CatRent, totals[0].Category)
	assert.Equal(t, model.CatGroceries, totals[1].Category)
	assert.Equal(t, model.CatSubscriptions, totals[2].Category)

	grand := decimal.Zero
	pctSum := decimal.Zero
	for _, ct := range totals {
		grand = grand.Add(ct.Total)
		pctSum = pctSum.Add(ct.Percent)
	}
	assert.True(t, grand.Equal(dec("955.29")))
	diff := pctSum.Sub(dec("100")).Abs()
	assert.True(t, diff.LessThan(dec("0.0001")), "percentages sum to 100, got %s", pctSum)
}

func TestCategoryTotals_EmptyInput(t *testing.T) {
	assert.Nil(t, CategoryTotals(nil, window(t)))
}

func TestTopCategory(t *testing.T) {
	w := window(t)

	top, ok := TopCategory(sampleTxs(), w)
	require.True(t, ok)
	assert.Equal(t, model.CatRent, top.Category)
	assert.True(t, top.Total.Equal(dec("900.00")))

	_, ok = TopCategory(nil, w)
	assert.False(t, ok, "undefined with no expenses")
}

func TestTopSpends(t *testing.T) {
	w := window(t)
	top := TopSpends(sampleTxs(), w, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "TRINITY ESTATES", top[0].Description)
	assert.Equal(t, "TESCO STORES", top[1].Description)
}

func TestNoSpendDays_PastCycle(t *testing.T) {
	w := window(t)
	txs := sampleTxs()

	// Spend dates in window: Jan 9, Jan 12, Jan 15 (hidden savings on the
	// 15th does not add a date). 28 days minus 3 distinct spend days.
	noSpend := NoSpendDays(txs, w, date(2026, 2, 10))
	distinct := DistinctSpendDays(txs, w)

	assert.Equal(t, 3, distinct)
	assert.Equal(t, 25, noSpend)
	assert.Equal(t, 28, noSpend+distinct)
}

func TestNoSpendDays_CurrentCycleStopsAtToday(t *testing.T) {
	cal := cycle.New(date(2026, 2, 5))
	today := date(2026, 2, 10)
	w := cal.At(0, today)
	require.Equal(t, date(2026, 2, 5), w.Start)

	txs := []model.Transaction{
		tx(1, "TESCO", "5.00", model.TypeExpense, model.CatGroceries, date(2026, 2, 6), true),
	}

	// Feb 5 through Feb 10 is six days, one of them a spend day.
	assert.Equal(t, 5, NoSpendDays(txs, w, today))
}

func TestNoSpendDays_CountsDaysWithoutAnyTransactions(t *testing.T) {
	w := window(t)
	assert.Equal(t, 28, NoSpendDays(nil, w, date(2026, 6, 1)))
}
