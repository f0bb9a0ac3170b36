package ingest

import (
	"github.com/skint-dev/skint/internal/classify"
	"github.com/skint-dev/skint/internal/ledger"
	"github.com/skint-dev/skint/internal/model"
)

// Report summarizes one import. Rejected rows (unparseable) and duplicate
// rows (already in the ledger) are distinct outcomes; neither aborts the
// import. Hidden counts every parsed candidate landing in a hidden category,
// whether or not it was then dropped as a duplicate.
type Report struct {
	Added      int
	Hidden     int
	Rejected   int
	Duplicates int
}

// Import classifies the data rows (everything after the header) and appends
// the accepted candidates to the ledger. Malformed rows are skipped and
// counted, never fatal.
func Import(l *ledger.Ledger, rows [][]string, m Mapping, c *classify.Classifier) Report {
	var rep Report
	for _, row := range rows[1:] {
		if len(row) < 2 {
			rep.Rejected++
			continue
		}
		rawDate := field(row, m.Date)
		desc := field(row, m.Description)
		rawAmount := field(row, m.Amount)
		if rawDate == "" || desc == "" {
			rep.Rejected++
			continue
		}
		date, ok := ParseDate(rawDate)
		if !ok {
			rep.Rejected++
			continue
		}
		signed, ok := ParseAmount(rawAmount)
		if !ok {
			rep.Rejected++
			continue
		}

		amount := signed.Abs()
		txType := c.Type(signed, desc)
		category := c.Category(desc)
		if model.Hidden(category) {
			rep.Hidden++
		}
		if l.HasDuplicate(date, desc, amount) {
			rep.Duplicates++
			continue
		}

		l.Add(ledger.AddParams{
			Description: desc,
			Amount:      amount,
			Type:        txType,
			Category:    category,
			Date:        date,
			Essential:   c.Essential(category),
		})
		rep.Added++
	}
	return rep
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
