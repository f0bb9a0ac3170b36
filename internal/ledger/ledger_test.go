package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skint-dev/skint/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAdd_AssignsMonotonicIDsAndSortsNewestFirst(t *testing.T) {
	l := New()

	first := l.Add(AddParams{Description: "TESCO", Amount: dec("12.50"), Type: model.TypeExpense, Category: model.CatGroceries, Date: date(2026, 1, 10)})
	second := l.Add(AddParams{Description: "NETFLIX.COM", Amount: dec("9.99"), Type: model.TypeExpense, Category: model.CatSubscriptions, Date: date(2026, 1, 20)})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, l.NextID)
	require.Len(t, l.Transactions, 2)
	assert.Equal(t, "NETFLIX.COM", l.Transactions[0].Description, "newest first")
}

func TestAdd_StoresAbsoluteAmount(t *testing.T) {
	l := New()
	tx := l.Add(AddParams{Description: "TESCO", Amount: dec("-12.50"), Type: model.TypeExpense, Category: model.CatGroceries, Date: date(2026, 1, 10)})
	assert.True(t, tx.Amount.Equal(dec("12.50")))
}

func TestDelete(t *testing.T) {
	l := New()
	tx := l.Add(AddParams{Description: "TESCO", Amount: dec("5"), Type: model.TypeExpense, Category: model.CatGroceries, Date: date(2026, 1, 10)})

	assert.True(t, l.Delete(tx.ID))
	assert.False(t, l.Delete(tx.ID), "second delete finds nothing")
	assert.Empty(t, l.Transactions)
}

func TestSetCategory_ForceRulesAreOneDirectional(t *testing.T) {
	l := New()
	tx := l.Add(AddParams{Description: "MYSTERY", Amount: dec("100"), Type: model.TypeExpense, Category: model.CatOther, Date: date(2026, 1, 10)})

	// Salary forces income.
	require.NoError(t, l.SetCategory(tx.ID, model.CatSalary))
	assert.Equal(t, model.TypeIncome, l.Find(tx.ID).Type)

	// Auto-essential category forces essential on.
	require.NoError(t, l.SetCategory(tx.ID, model.CatRent))
	assert.True(t, l.Find(tx.ID).Essential)

	// Moving to a discretionary category unsets neither.
	require.NoError(t, l.SetCategory(tx.ID, model.CatShopping))
	got := l.Find(tx.ID)
	assert.True(t, got.Essential)
	assert.Equal(t, model.TypeIncome, got.Type)
}

func TestSetCategory_RejectsUnknown(t *testing.T) {
	l := New()
	tx := l.Add(AddParams{Description: "X", Amount: dec("1"), Type: model.TypeExpense, Category: model.CatOther, Date: date(2026, 1, 10)})
	assert.Error(t, l.SetCategory(tx.ID, "Not A Category"))
	assert.Error(t, l.SetCategory(999, model.CatRent))
}

func TestHasDuplicate_ToleranceWindow(t *testing.T) {
	l := New()
	l.Add(AddParams{Description: "TESCO", Amount: dec("12.50"), Type: model.TypeExpense, Category: model.CatGroceries, Date: date(2026, 1, 10)})

	assert.True(t, l.HasDuplicate(date(2026, 1, 10), "TESCO", dec("12.50")))
	assert.True(t, l.HasDuplicate(date(2026, 1, 10), "TESCO", dec("12.505")))
	assert.False(t, l.HasDuplicate(date(2026, 1, 10), "TESCO", dec("12.51")), "tolerance is strict")
	assert.False(t, l.HasDuplicate(date(2026, 1, 11), "TESCO", dec("12.50")), "different date")
	assert.False(t, l.HasDuplicate(date(2026, 1, 10), "TESCO STORES", dec("12.50")), "description must match exactly")
}

func TestVisible_RespectsShowHidden(t *testing.T) {
	l := New()
	l.Add(AddParams{Description: "TESCO", Amount: dec("5"), Type: model.TypeExpense, Category: model.CatGroceries, Date: date(2026, 1, 10)})
	l.Add(AddParams{Description: "PLUM DDR", Amount: dec("50"), Type: model.TypeExpense, Category: model.CatSavings, Date: date(2026, 1, 10)})

	assert.Len(t, l.Visible(), 1)
	assert.Equal(t, 1, l.HiddenCount())

	l.ShowHidden = true
	assert.Len(t, l.Visible(), 2)
}

func TestClear_KeepsSettingsAndBills(t *testing.T) {
	l := New()
	l.Add(AddParams{Description: "TESCO", Amount: dec("5"), Type: model.TypeExpense, Category: model.CatGroceries, Date: date(2026, 1, 10)})
	l.Budget = dec("1500")
	require.NoError(t, l.AddBill(model.RecurringBill{Name: "Rent", Category: model.CatRent, Amount: dec("900"), DayOfMonth: 1}))

	l.Clear()

	assert.Empty(t, l.Transactions)
	assert.Equal(t, 1, l.NextID)
	assert.True(t, l.Budget.Equal(dec("1500")))
	assert.Len(t, l.Bills, 1)
}

func TestAddBill_ValidatesAtBoundary(t *testing.T) {
	l := New()

	assert.Error(t, l.AddBill(model.RecurringBill{Name: "", Amount: dec("10"), DayOfMonth: 5}))
	assert.Error(t, l.AddBill(model.RecurringBill{Name: "X", Amount: dec("0"), DayOfMonth: 5}))
	assert.Error(t, l.AddBill(model.RecurringBill{Name: "X", Amount: dec("10"), DayOfMonth: 0}))
	assert.Error(t, l.AddBill(model.RecurringBill{Name: "X", Amount: dec("10"), DayOfMonth: 32}))
	assert.Empty(t, l.Bills, "rejected bills never enter state")

	require.NoError(t, l.AddBill(model.RecurringBill{Name: "X", Amount: dec("10"), DayOfMonth: 31}))
	assert.Equal(t, model.Monthly, l.Bills[0].Frequency, "frequency defaults to monthly")
}

func TestAddCard_ValidatesAtBoundary(t *testing.T) {
	l := New()

	assert.Error(t, l.AddCard(model.CreditCard{Name: "", DueDay: 5}))
	assert.Error(t, l.AddCard(model.CreditCard{Name: "Visa", Balance: dec("-1"), DueDay: 5}))
	assert.Error(t, l.AddCard(model.CreditCard{Name: "Visa", DueDay: 0}))

	require.NoError(t, l.AddCard(model.CreditCard{Name: "Visa", Balance: dec("220"), Limit: dec("1000"), DueDay: 15}))
	assert.True(t, l.RemoveCard("Visa"))
	assert.False(t, l.RemoveCard("Visa"))
}

func TestNormalize_RepairsOlderRecords(t *testing.T) {
	l := &Ledger{
		Transactions: []model.Transaction{
			{ID: 7, Description: "A", Amount: dec("-3"), Date: time.Date(2026, 1, 10, 14, 30, 0, 0, time.UTC)},
			{ID: 2, Description: "B", Amount: dec("5"), Date: date(2026, 1, 12)},
		},
	}
	l.Normalize()

	assert.Equal(t, 8, l.NextID, "id counter advances past highest id")
	assert.True(t, l.Budget.Equal(DefaultBudget))
	assert.Equal(t, "B", l.Transactions[0].Description, "sorted newest first")
	for _, tx := range l.Transactions {
		assert.False(t, tx.Amount.IsNegative())
		assert.Equal(t, tx.Date, model.Day(tx.Date))
	}
}

func TestExportCSV_Format(t *testing.T) {
	l := New()
	l.Add(AddParams{Description: `CAFE "NERO"`, Amount: dec("3.20"), Type: model.TypeExpense, Category: model.CatEatingOut, Date: date(2026, 1, 10)})

	var sb strings.Builder
	require.NoError(t, l.ExportCSV(&sb))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ExportHeader, lines[0])
	assert.Equal(t, `2026-01-10,"CAFE ""NERO""",3.20,expense,"Coffee & Eating Out",false`, lines[1])
}
