// Package ingest turns delimited bank-export text into ledger transactions:
// splitting rows, guessing column mappings from headers, parsing the dates
// and amounts banks actually emit, and deduplicating against the ledger.
package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SplitLine splits one CSV line on commas outside quotes. A quote character
// toggles in-field state rather than delimiting a field, which matches how
// bank exports quote embedded commas. Fields are whitespace-trimmed.
func SplitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}

// Records splits CSV text into rows, dropping blank lines. At least a header
// row and one data row are required.
func Records(text string) ([][]string, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(strings.TrimSuffix(line, "\r")) == "" {
			continue
		}
		rows = append(rows, SplitLine(strings.TrimSuffix(line, "\r")))
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("need a header row and at least one data row, got %d rows", len(rows))
	}
	return rows, nil
}

// Mapping assigns CSV column indexes to transaction fields. A field left at
// -1 is unassigned.
type Mapping struct {
	Date        int
	Description int
	Amount      int
}

// Valid reports whether every field has a column.
func (m Mapping) Valid() bool {
	return m.Date >= 0 && m.Description >= 0 && m.Amount >= 0
}

// MapColumns guesses a column mapping by scanning header names for known
// substrings. Unrecognized fields stay -1 for the caller to assign.
func MapColumns(headers []string) Mapping {
	m := Mapping{Date: -1, Description: -1, Amount: -1}
	for i, h := range headers {
		lh := strings.ToLower(h)
		if m.Date == -1 && strings.Contains(lh, "date") {
			m.Date = i
		}
		if m.Description == -1 &&
			(strings.Contains(lh, "desc") || strings.Contains(lh, "memo") || strings.Contains(lh, "narrative")) {
			m.Description = i
		}
		if m.Amount == -1 &&
			(strings.Contains(lh, "amount") || strings.Contains(lh, "value")) {
			m.Amount = i
		}
	}
	return m
}

var (
	dmyPattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)
	isoPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

	// fallbackLayouts covers the stragglers generic date parsing accepted.
	fallbackLayouts = []string{
		"2 Jan 2006",
		"02 Jan 2006",
		"Jan 2, 2006",
		"2 January 2006",
		time.RFC3339,
	}
)

// ParseDate reads the date formats bank CSVs use: D/M/Y or D-M-Y with a two-
// or four-digit year (two-digit years are 2000s), ISO Y-M-D, then a few
// spelled-out fallbacks. The second result is false when nothing parses.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if m := isoPattern.FindStringSubmatch(raw); m != nil {
		t, err := time.Parse("2006-01-02", m[0])
		if err == nil {
			return t, true
		}
	}
	if m := dmyPattern.FindStringSubmatch(raw); m != nil {
		day := atoi(m[1])
		month := atoi(m[2])
		year := atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= daysIn(year, time.Month(month)) {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
		return time.Time{}, false
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// ParseAmount strips currency symbols, commas and whitespace, then parses the
// remainder as a decimal. The second result is false for non-numeric input.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '£', '$', '€', ',', ' ', '\t':
			return -1
		}
		return r
	}, raw)
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
