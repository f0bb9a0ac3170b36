package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/config"
	"github.com/skint-dev/skint/internal/ledger"
	"github.com/skint-dev/skint/internal/store"
)

func newInitCommand(a *app) *cobra.Command {
	var anchor string
	var days int

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a skint.yaml and empty data file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if err := os.MkdirAll(absDir, 0o755); err != nil {
				return fmt.Errorf("creating directory: %w", err)
			}

			cfgPath := filepath.Join(absDir, "skint.yaml")
			if _, err := os.Stat(cfgPath); err == nil {
				return fmt.Errorf("%s already exists", cfgPath)
			}

			cfg := config.Default()
			if anchor != "" {
				cfg.Cycle.Anchor = anchor
			}
			if days > 0 {
				cfg.Cycle.Days = days
			}
			if _, err := cfg.Calendar(); err != nil {
				return err
			}
			if err := config.Save(cfgPath, cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			dataPath := filepath.Join(absDir, store.DefaultFile)
			if err := store.Save(dataPath, ledger.New()); err != nil {
				return fmt.Errorf("writing data file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized skint at %s (payday anchor %s, %d-day cycle)\n",
				absDir, cfg.Cycle.Anchor, cfg.Cycle.Days)
			return nil
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "", "a known payday, YYYY-MM-DD")
	cmd.Flags().IntVar(&days, "days", 0, "cycle length in days")

	return cmd
}
