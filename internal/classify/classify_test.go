package classify

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skint-dev/skint/internal/model"
)

func TestCategory_FirstMatchWins(t *testing.T) {
	c := Default()

	tests := []struct {
		desc string
		want string
	}{
		{"NETFLIX.COM 1234", model.CatSubscriptions},
		{"SAINSBURYS S/MKT", model.CatGroceries},
		{"TESCO STORES 2291", model.CatGroceries},
		{"DELIVEROO", model.CatTakeaway},
		{"TFL TRAVEL CH", model.CatTransport},
		{"CAPITAL ONE", model.CatCreditCard},
		{"TRINITY ESTATES", model.CatRent},
		{"BRITISH GAS", model.CatBills},
		{"AMAZON PRIME", model.CatSubscriptions},
		{"AMZN MKTP UK", model.CatShopping},
		{"SPORTSDIRECT.COM", model.CatShopping},
		{"SPORT DIRECT 104", model.CatShopping},
		{"TK MAXX", model.CatShopping},
		{"MARKS&SPENCER PLC", model.CatGroceries},
		{"SOMETHING UNKNOWN", model.CatOther},
		{"", model.CatOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Category(tt.desc), "description %q", tt.desc)
	}
}

// The fee rule deliberately precedes the broader Plum direct-debit rule; a
// Plum fee must never be classified as a savings move.
func TestCategory_OverlapOrderPinned(t *testing.T) {
	c := Default()

	assert.Equal(t, model.CatBankFees, c.Category("PLUM DDR FEE REF1234"))
	assert.Equal(t, model.CatSavings, c.Category("PLUM DDR"))
	assert.Equal(t, model.CatInternalTransfer, c.Category("PLUM FINTECH LTD"))
}

func TestCategory_ReorderedRulesChangeResult(t *testing.T) {
	// Same two rules, opposite order: proves order sensitivity rather than
	// pattern specificity.
	forward, err := New([]Rule{
		re(`plum\b.*fee`, model.CatBankFees),
		re(`plum\b.*ddr`, model.CatSavings),
	}, nil)
	require.NoError(t, err)
	backward, err := New([]Rule{
		re(`plum\b.*ddr`, model.CatSavings),
		re(`plum\b.*fee`, model.CatBankFees),
	}, nil)
	require.NoError(t, err)

	desc := "PLUM DDR FEE REF1234"
	assert.Equal(t, model.CatBankFees, forward.Category(desc))
	assert.Equal(t, model.CatSavings, backward.Category(desc))
}

func TestCategory_CaseInsensitive(t *testing.T) {
	c := Default()
	assert.Equal(t, c.Category("netflix.com"), c.Category("NETFLIX.COM"))
	assert.Equal(t, model.CatShopping, c.Category("tk maxx reading"))
}

func TestType_SignAndHints(t *testing.T) {
	c := Default()

	pos := decimal.NewFromInt(50)
	neg := decimal.NewFromInt(-50)

	assert.Equal(t, model.TypeIncome, c.Type(pos, "REFUND"))
	assert.Equal(t, model.TypeExpense, c.Type(neg, "TESCO"))
	assert.Equal(t, model.TypeExpense, c.Type(decimal.Zero, "TESCO"))

	// Income hints win over a negative sign.
	assert.Equal(t, model.TypeIncome, c.Type(neg, "PRIMARK STORES LTD SALARY"))
	assert.Equal(t, model.TypeIncome, c.Type(neg, "PLUM FINTECH BGC"))
}

func TestEssential_DefaultsFromCategory(t *testing.T) {
	c := Default()

	assert.True(t, c.Essential(model.CatRent))
	assert.True(t, c.Essential(model.CatGroceries))
	assert.False(t, c.Essential(model.CatTakeaway))
	assert.False(t, c.Essential("no such category"))
}

func TestNew_BadRegexRejected(t *testing.T) {
	_, err := New([]Rule{re(`plum(`, model.CatBankFees)}, nil)
	require.Error(t, err)
}

func TestLoadRules_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	rules := []Rule{
		sub("octopus energy", model.CatBills),
		re(`lner|gwr`, model.CatTransport),
	}
	require.NoError(t, SaveRules(path, rules, []string{"acme payroll"}))

	loaded, hints, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, rules, loaded)
	assert.Equal(t, []string{"acme payroll"}, hints)

	c, err := New(loaded, hints)
	require.NoError(t, err)
	assert.Equal(t, model.CatBills, c.Category("OCTOPUS ENERGY DD"))
	assert.Equal(t, model.CatTransport, c.Category("GWR TICKET"))
	assert.Equal(t, model.TypeIncome, c.Type(decimal.NewFromInt(-1), "ACME PAYROLL"))
}

func TestLoadRules_RejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, SaveRules(path, []Rule{{Kind: MatchSubstring, Pattern: "x"}}, nil))

	_, _, err := LoadRules(path)
	assert.Error(t, err)
}
