package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/ingest"
	"github.com/skint-dev/skint/internal/model"
	"github.com/skint-dev/skint/internal/recurring"
)

func newCardCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Track credit card balances",
	}
	cmd.AddCommand(newCardAddCommand(a), newCardListCommand(a), newCardRemoveCommand(a))
	return cmd
}

func newCardAddCommand(a *app) *cobra.Command {
	var limit string
	var dueDay int

	cmd := &cobra.Command{
		Use:   "add <name> <balance>",
		Short: "Add or update a credit card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, ok := ingest.ParseAmount(args[1])
			if !ok {
				return fmt.Errorf("invalid balance %q", args[1])
			}
			limitAmount := decimal.Zero
			if limit != "" {
				limitAmount, ok = ingest.ParseAmount(limit)
				if !ok {
					return fmt.Errorf("invalid limit %q", limit)
				}
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}

			// Re-adding an existing card replaces it, so balances can be
			// refreshed after each statement.
			l.RemoveCard(args[0])
			card := model.CreditCard{
				Name:    args[0],
				Balance: balance.Abs(),
				Limit:   limitAmount.Abs(),
				DueDay:  dueDay,
			}
			if err := l.AddCard(card); err != nil {
				return err
			}
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved card %s, balance %s\n", card.Name, money(card.Balance))
			return nil
		},
	}

	cmd.Flags().StringVar(&limit, "limit", "", "credit limit")
	cmd.Flags().IntVar(&dueDay, "due-day", 1, "day of month the payment falls due")

	return cmd
}

func newCardListCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List credit cards",
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

			totalOwed := decimal.Zero
			for _, c := range l.Cards {
				totalOwed = totalOwed.Add(c.Balance)
			}

			if asJSON {
				type cardRow struct {
					Name        string  `json:"name"`
					Balance     float64 `json:"balance"`
					Limit       float64 `json:"limit,omitempty"`
					Utilization float64 `json:"utilization,omitempty"`
					NextDue     string  `json:"next_due"`
				}
				rows := make([]cardRow, 0, len(l.Cards))
				for _, c := range l.Cards {
					row := cardRow{
						Name:    c.Name,
						Balance: f64(c.Balance),
						Limit:   f64(c.Limit),
						NextDue: recurring.CardNextDue(c, today).Format("2006-01-02"),
					}
					if c.Limit.IsPositive() {
						row.Utilization = f64(c.Balance.Div(c.Limit).Mul(decimal.NewFromInt(100)).Round(1))
					}
					rows = append(rows, row)
				}
				return writeJSON(out, struct {
					Cards     []cardRow `json:"cards"`
					TotalOwed float64   `json:"total_owed"`
				}{rows, f64(totalOwed)})
			}

			if len(l.Cards) == 0 {
				fmt.Fprintln(out, "No cards tracked.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"Name", "Balance", "Limit", "Used", "Next Due"})
			for _, c := range l.Cards {
				used := ""
				if c.Limit.IsPositive() {
					pct := c.Balance.Div(c.Limit).Mul(decimal.NewFromInt(100))
					used = pct.Round(0).String() + "%"
					if pct.GreaterThan(decimal.NewFromInt(50)) {
						used = text.FgRed.Sprint(used)
					}
				}
				limitStr := ""
				if c.Limit.IsPositive() {
					limitStr = money(c.Limit)
				}
				t.AppendRow(table.Row{
					c.Name,
					money(c.Balance),
					limitStr,
					used,
					recurring.CardNextDue(c, today).Format("2006-01-02"),
				})
			}
			t.AppendSeparator()
			t.AppendFooter(table.Row{text.Bold.Sprint("Total owed"), text.Bold.Sprint(money(totalOwed)), "", "", ""})
			t.SetStyle(table.StyleRounded)
			t.Style().Format.Header = text.FormatDefault
			t.Style().Format.Footer = text.FormatDefault
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignRight},
				{Number: 3, Align: text.AlignRight},
			})
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func newCardRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Stop tracking a card",
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
			if !l.RemoveCard(args[0]) {
				return fmt.Errorf("no card named %q", args[0])
			}
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed card %s\n", args[0])
			return nil
		},
	}
}
