package commands

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/recurring"
)

type recurringEntry struct {
	Name        string  `json:"name"`
	Source      string  `json:"source"` // "detected" or "declared"
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	Occurrences int     `json:"occurrences,omitempty"`
	LastSeen    string  `json:"last_seen,omitempty"`
	NextDue     string  `json:"next_due"`
	AnnualCost  float64 `json:"annual_cost"`
}

type recurringOutput struct {
	Entries     []recurringEntry `json:"entries"`
	AnnualTotal float64          `json:"annual_total"`
}

func newRecurringCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Detected subscriptions and declared bills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}
			today := a.today()

			detections := recurring.Detect(l.Transactions, today, cfg.DetectorSettings())

			var entries []recurringEntry
			annualTotal := decimal.Zero
			for _, d := range detections {
				entries = append(entries, recurringEntry{
					Name:        d.Name,
					Source:      "detected",
					Amount:      f64(d.Amount),
					Frequency:   string(d.Frequency),
					Occurrences: d.Occurrences,
					LastSeen:    d.LastSeen.Format("2006-01-02"),
					NextDue:     d.NextDue.Format("2006-01-02"),
					AnnualCost:  f64(d.AnnualCost),
				})
				annualTotal = annualTotal.Add(d.AnnualCost)
			}
			for _, b := range l.Bills {
				annual := b.Amount.Mul(decimal.NewFromInt(int64(b.Frequency.PeriodsPerYear())))
				entries = append(entries, recurringEntry{
					Name:       b.Name,
					Source:     "declared",
					Amount:     f64(b.Amount),
					Frequency:  string(b.Frequency),
					NextDue:    recurring.BillNextDue(b, today).Format("2006-01-02"),
					AnnualCost: f64(annual),
				})
				annualTotal = annualTotal.Add(annual)
			}
			sort.SliceStable(entries, func(i, j int) bool {
				if entries[i].NextDue != entries[j].NextDue {
					return entries[i].NextDue < entries[j].NextDue
				}
				return entries[i].Name < entries[j].Name
			})

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, recurringOutput{
					Entries:     entries,
					AnnualTotal: f64(annualTotal),
				})
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "Nothing recurring found yet. Import more history or declare bills with 'skint bill add'.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"Name", "Source", "Amount", "Every", "Next Due", "Yearly"})
			for _, e := range entries {
				src := e.Source
				if src == "detected" {
					src = text.FgCyan.Sprint(src)
				}
				t.AppendRow(table.Row{
					e.Name,
					src,
					money(decimal.NewFromFloat(e.Amount)),
					e.Frequency,
					e.NextDue,
					money(decimal.NewFromFloat(e.AnnualCost)),
				})
			}
			t.AppendSeparator()
			t.AppendFooter(table.Row{"", "", "", "", text.Bold.Sprint("Total"), text.Bold.Sprint(money(annualTotal))})
			t.SetStyle(table.StyleRounded)
			t.Style().Format.Header = text.FormatDefault
			t.Style().Format.Footer = text.FormatDefault
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 3, Align: text.AlignRight},
				{Number: 6, Align: text.AlignRight},
			})
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
