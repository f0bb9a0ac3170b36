package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/ingest"
	"github.com/skint-dev/skint/internal/model"
	"github.com/skint-dev/skint/internal/recurring"
)

func newBillCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Manage declared recurring bills",
	}
	cmd.AddCommand(newBillAddCommand(a), newBillListCommand(a), newBillRemoveCommand(a))
	return cmd
}

func newBillAddCommand(a *app) *cobra.Command {
	var category string
	var day int
	var frequency string

	cmd := &cobra.Command{
		Use:   "add <name> <amount>",
		Short: "Declare a recurring bill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := ingest.ParseAmount(args[1])
			if !ok {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			if category != "" && !model.Known(category) {
				return fmt.Errorf("unknown category %q", category)
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}

			bill := model.RecurringBill{
				Name:       args[0],
				Category:   category,
				Amount:     amount.Abs(),
				DayOfMonth: day,
				Frequency:  model.Frequency(frequency),
			}
			if err := l.AddBill(bill); err != nil {
				return err
			}
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added bill %s %s (%s, day %d)\n",
				bill.Name, money(bill.Amount), frequency, day)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", model.CatBills, "bill category")
	cmd.Flags().IntVar(&day, "day", 1, "day of month the bill falls due")
	cmd.Flags().StringVar(&frequency, "every", string(model.Monthly), "monthly, fortnightly, or weekly")

	return cmd
}

func newBillListCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List declared bills",
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
			out := cmd.OutOrStdout()

			if asJSON {
				type billRow struct {
					Name      string  `json:"name"`
					Category  string  `json:"category"`
					Amount    float64 `json:"amount"`
					Day       int     `json:"day_of_month"`
					Frequency string  `json:"frequency"`
					NextDue   string  `json:"next_due"`
				}
				rows := make([]billRow, 0, len(l.Bills))
				for _, b := range l.Bills {
					rows = append(rows, billRow{
						Name:      b.Name,
						Category:  b.Category,
						Amount:    f64(b.Amount),
						Day:       b.DayOfMonth,
						Frequency: string(b.Frequency),
						NextDue:   recurring.BillNextDue(b, today).Format("2006-01-02"),
					})
				}
				return writeJSON(out, rows)
			}

			if len(l.Bills) == 0 {
				fmt.Fprintln(out, "No bills declared.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"Name", "Category", "Amount", "Every", "Next Due"})
			for _, b := range l.Bills {
				t.AppendRow(table.Row{
					b.Name,
					b.Category,
					money(b.Amount),
					b.Frequency,
					recurring.BillNextDue(b, today).Format("2006-01-02"),
				})
			}
			t.SetStyle(table.StyleRounded)
			t.Style().Format.Header = text.FormatDefault
			t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func newBillRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a declared bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}
			if !l.RemoveBill(args[0]) {
				return fmt.Errorf("no bill named %q", args[0])
			}
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed bill %s\n", args[0])
			return nil
		},
	}
}
