package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/ingest"
	"github.com/skint-dev/skint/internal/ledger"
	"github.com/skint-dev/skint/internal/model"
)

func newAddCommand(a *app) *cobra.Command {
	var date string
	var category string
	var income bool
	var essential bool

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Add a transaction by hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc := strings.TrimSpace(args[0])
			if desc == "" {
				return fmt.Errorf("description is required")
			}
			amount, ok := ingest.ParseAmount(args[1])
			if !ok || amount.IsZero() {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			when := a.today()
			if date != "" {
				parsed, ok := ingest.ParseDate(date)
				if !ok {
					return fmt.Errorf("invalid date %q", date)
				}
				when = parsed
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			cls, err := a.classifier(cfg)
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}

			cat := category
			if cat == "" {
				cat = cls.Category(desc)
			} else if !model.Known(cat) {
				return fmt.Errorf("unknown category %q", cat)
			}

			// Hand-entered amounts are taken as magnitudes, so the sign
			// heuristic from imports does not apply here.
			txType := model.TypeExpense
			if income || cat == model.CatSalary {
				txType = model.TypeIncome
			}

			tx := l.Add(ledger.AddParams{
				Description: desc,
				Amount:      amount.Abs(),
				Type:        txType,
				Category:    cat,
				Date:        when,
				Essential:   essential || cls.Essential(cat),
			})
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d %s %s (%s, %s)\n",
				tx.ID, tx.Description, money(tx.Amount), tx.Type, tx.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date (default today)")
	cmd.Flags().StringVar(&category, "category", "", "category (default auto-classified)")
	cmd.Flags().BoolVar(&income, "income", false, "record as income")
	cmd.Flags().BoolVar(&essential, "essential", false, "mark as essential")

	return cmd
}
