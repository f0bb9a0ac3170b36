package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/aggregate"
	"github.com/skint-dev/skint/internal/ingest"
)

func newAffordCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "afford <amount> [item]",
		Short: "Check whether a purchase fits this cycle's available cash",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := ingest.ParseAmount(args[0])
			if !ok || !amount.IsPositive() {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			item := "that"
			if len(args) == 2 {
				item = args[1]
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}
			w, err := a.window(cfg, "current")
			if err != nil {
				return err
			}

			available := aggregate.AvailableCash(l.Transactions, w)
			after := available.Sub(amount)
			out := cmd.OutOrStdout()

			if amount.GreaterThan(available) {
				fmt.Fprintf(out, "Nope. %s costs %s but you only have %s this cycle.\n",
					item, money(amount), money(available))
				return nil
			}
			fmt.Fprintf(out, "Yes. You'll still have %s left, with %d day(s) to payday.\n",
				money(after), w.DaysLeft)
			return nil
		},
	}

	return cmd
}
