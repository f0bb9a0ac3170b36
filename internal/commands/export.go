package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions as CSV",
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

			if outPath == "" {
				return l.ExportCSV(cmd.OutOrStdout())
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()
			if err := l.ExportCSV(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transaction(s) to %s\n", len(l.Transactions), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to a file instead of stdout")

	return cmd
}
