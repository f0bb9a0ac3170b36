package ledger

import (
	"fmt"
	"io"
	"strings"
)

// ExportHeader is the fixed column set of the export format.
const ExportHeader = "Date,Description,Amount,Type,Category,Essential"

const exportDateFormat = "2006-01-02"

// ExportCSV writes the full ledger in the dashboard's export format:
// description and category double-quote-escaped, amounts unsigned.
func (l *Ledger) ExportCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, ExportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, tx := range l.Transactions {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s,%t\n",
			tx.Date.Format(exportDateFormat),
			quote(tx.Description),
			tx.Amount.StringFixed(2),
			tx.Type,
			quote(tx.Category),
			tx.Essential,
		)
		if err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
