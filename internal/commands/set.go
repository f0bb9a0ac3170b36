package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/ingest"
)

func newSetCommand(a *app) *cobra.Command {
	var budget, balance, savings string
	var showHidden, hideHidden bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update budget, balance, and savings figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if budget == "" && balance == "" && savings == "" && !showHidden && !hideHidden {
				return fmt.Errorf("nothing to set; pass --budget, --balance, --savings, or --show-hidden/--hide-hidden")
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if budget != "" {
				amount, ok := ingest.ParseAmount(budget)
				if !ok || !amount.IsPositive() {
					return fmt.Errorf("invalid budget %q", budget)
				}
				l.Budget = amount
				fmt.Fprintf(out, "Budget set to %s per cycle\n", money(amount))
			}
			if balance != "" {
				amount, ok := ingest.ParseAmount(balance)
				if !ok {
					return fmt.Errorf("invalid balance %q", balance)
				}
				l.Balance = amount
				fmt.Fprintf(out, "Balance set to %s\n", money(amount))
			}
			if savings != "" {
				amount, ok := ingest.ParseAmount(savings)
				if !ok || amount.IsNegative() {
					return fmt.Errorf("invalid savings %q", savings)
				}
				l.TotalSavings = amount
				fmt.Fprintf(out, "Savings set to %s\n", money(amount))
			}
			if showHidden {
				l.ShowHidden = true
				fmt.Fprintln(out, "Hidden categories will be listed")
			}
			if hideHidden {
				l.ShowHidden = false
				fmt.Fprintln(out, "Hidden categories will be excluded")
			}

			return a.saveLedger(cfg, l)
		},
	}

	cmd.Flags().StringVar(&budget, "budget", "", "per-cycle budget")
	cmd.Flags().StringVar(&balance, "balance", "", "current account balance")
	cmd.Flags().StringVar(&savings, "savings", "", "total savings")
	cmd.Flags().BoolVar(&showHidden, "show-hidden", false, "always list hidden categories")
	cmd.Flags().BoolVar(&hideHidden, "hide-hidden", false, "exclude hidden categories again")
	cmd.MarkFlagsMutuallyExclusive("show-hidden", "hide-hidden")

	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}
			if !l.Delete(id) {
				return fmt.Errorf("no transaction #%d", id)
			}
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", id)
			return nil
		},
	}
}

func newEssentialCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "essential <id>",
		Short: "Toggle a transaction's essential flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}
			if !l.ToggleEssential(id) {
				return fmt.Errorf("no transaction #%d", id)
			}
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}
			tx := l.Find(id)
			state := "discretionary"
			if tx.Essential {
				state = "essential"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "#%d is now %s\n", id, state)
			return nil
		},
	}
}

func newRecatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recat <id> <category>",
		Short: "Move a transaction to another category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}
			if err := l.SetCategory(id, args[1]); err != nil {
				return err
			}
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "#%d moved to %s\n", id, args[1])
			return nil
		},
	}
}

func newClearCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("this deletes all transactions; rerun with --force")
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			l, err := a.loadLedger(cfg)
			if err != nil {
				return err
			}
			n := len(l.Transactions)
			l.Clear()
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d transaction(s). Budget, bills and cards kept.\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the safety check")

	return cmd
}
