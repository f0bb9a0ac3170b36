package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/model"
)

type listedTransaction struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Essential   bool    `json:"essential"`
}

func newListCommand(a *app) *cobra.Command {
	var period string
	var category string
	var txType string
	var search string
	var showHidden bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
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
			w, err := a.window(cfg, period)
			if err != nil {
				return err
			}
			if txType != "" && txType != string(model.TypeIncome) && txType != string(model.TypeExpense) {
				return fmt.Errorf("unknown type %q (want income or expense)", txType)
			}
			if category != "" && !model.Known(category) {
				return fmt.Errorf("unknown category %q", category)
			}

			needle := strings.ToLower(search)
			var rows []model.Transaction
			hiddenSkipped := 0
			for _, tx := range l.Transactions {
				if model.Hidden(tx.Category) && !showHidden && !l.ShowHidden {
					hiddenSkipped++
					continue
				}
				if !w.Start.IsZero() && !w.Contains(tx.Date) {
					continue
				}
				if category != "" && tx.Category != category {
					continue
				}
				if txType != "" && string(tx.Type) != txType {
					continue
				}
				if needle != "" && !strings.Contains(strings.ToLower(tx.Description), needle) {
					continue
				}
				rows = append(rows, tx)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				listed := make([]listedTransaction, 0, len(rows))
				for _, tx := range rows {
					amount, _ := tx.Amount.Float64()
					listed = append(listed, listedTransaction{
						ID:          tx.ID,
						Date:        tx.Date.Format("2006-01-02"),
						Description: tx.Description,
						Amount:      amount,
						Type:        string(tx.Type),
						Category:    tx.Category,
						Essential:   tx.Essential,
					})
				}
				return writeJSON(out, listed)
			}

			if len(rows) == 0 {
				fmt.Fprintln(out, "No transactions.")
				if hiddenSkipped > 0 {
					fmt.Fprintf(out, "(%d hidden, pass --show-hidden to include)\n", hiddenSkipped)
				}
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"ID", "Date", "Description", "Amount", "Type", "Category", "Ess"})
			for _, tx := range rows {
				amountStr := money(tx.Amount)
				if tx.Type == model.TypeIncome {
					amountStr = text.FgGreen.Sprint("+" + amountStr)
				}
				ess := ""
				if tx.Essential {
					ess = "*"
				}
				t.AppendRow(table.Row{
					tx.ID,
					tx.Date.Format("2006-01-02"),
					tx.Description,
					amountStr,
					tx.Type,
					tx.Category,
					ess,
				})
			}
			t.SetStyle(table.StyleRounded)
			t.Style().Format.Header = text.FormatDefault
			t.SetColumnConfigs([]table.ColumnConfig{{Number: 4, Align: text.AlignRight}})
			t.Render()

			if hiddenSkipped > 0 {
				fmt.Fprintf(out, "%d hidden transaction(s) not shown (use --show-hidden)\n", hiddenSkipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "current", "cycle to show: current, last, or all")
	cmd.Flags().StringVar(&category, "category", "", "only this category")
	cmd.Flags().StringVar(&txType, "type", "", "only income or expense")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive description match")
	cmd.Flags().BoolVar(&showHidden, "show-hidden", false, "include hidden categories")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
