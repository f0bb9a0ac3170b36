package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{`a,"b,c",d`, []string{"a", "b,c", "d"}},
		{` a , b `, []string{"a", "b"}},
		{`"wrapped"`, []string{"wrapped"}},
		{"", []string{""}},
		{"a,,c", []string{"a", "", "c"}},
		{`"unterminated,stays one field`, []string{"unterminated,stays one field"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitLine(tt.line), "line %q", tt.line)
	}
}

func TestRecords_RequiresHeaderAndData(t *testing.T) {
	_, err := Records("Date,Description,Amount\n")
	assert.Error(t, err)

	rows, err := Records("Date,Description,Amount\r\n\r\n01/02/2026,TESCO,-5.00\n")
	require.NoError(t, err)
	require.Len(t, rows, 2, "blank lines dropped")
	assert.Equal(t, []string{"01/02/2026", "TESCO", "-5.00"}, rows[1])
}

func TestMapColumns_Heuristics(t *testing.T) {
	m := MapColumns([]string{"Transaction Date", "Narrative", "Value", "Balance"})
	assert.Equal(t, Mapping{Date: 0, Description: 1, Amount: 2}, m)
	assert.True(t, m.Valid())

	m = MapColumns([]string{"Posted", "Memo", "Amount (GBP)"})
	assert.Equal(t, Mapping{Date: -1, Description: 1, Amount: 2}, m)
	assert.False(t, m.Valid())

	// First matching header wins for each field.
	m = MapColumns([]string{"Date", "Value Date", "Description", "Amount"})
	assert.Equal(t, Mapping{Date: 0, Description: 2, Amount: 3}, m)
}

func TestParseDate(t *testing.T) {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"05/02/2026", d(2026, 2, 5), true},
		{"5/2/2026", d(2026, 2, 5), true},
		{"05-02-2026", d(2026, 2, 5), true},
		{"5/2/26", d(2026, 2, 5), true}, // two-digit year is 2000s
		{"2026-02-05", d(2026, 2, 5), true},
		{"2026-02-05T10:30:00", d(2026, 2, 5), true}, // ISO prefix wins
		{"5 Feb 2026", d(2026, 2, 5), true},
		{"31/02/2026", time.Time{}, false}, // no such day
		{"13/13/2026", time.Time{}, false},
		{"not a date", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, got, "raw %q", tt.raw)
		}
	}
}

func TestParseDate_DayFirstNotMonthFirst(t *testing.T) {
	got, ok := ParseDate("03/04/2026")
	require.True(t, ok)
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 3, got.Day())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"12.50", "12.50", true},
		{"-12.50", "-12.50", true},
		{"£1,234.56", "1234.56", true},
		{"$ 99", "99", true},
		{"€7,00", "700", true}, // comma stripped, not treated as decimal point
		{"", "", false},
		{"abc", "", false},
		{"£", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		if tt.ok {
			assert.True(t, got.Equal(mustDec(tt.want)), "raw %q: got %s", tt.raw, got)
		}
	}
}
