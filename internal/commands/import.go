package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/ingest"
)

func newImportCommand(a *app) *cobra.Command {
	var dateCol, descCol, amountCol int

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a bank statement CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			rows, err := ingest.Records(string(data))
			if err != nil {
				return err
			}

			m := ingest.MapColumns(rows[0])
			if dateCol >= 0 {
				m.Date = dateCol
			}
			if descCol >= 0 {
				m.Description = descCol
			}
			if amountCol >= 0 {
				m.Amount = amountCol
			}
			if !m.Valid() {
				return fmt.Errorf("could not find date, description and amount columns in %q; use the --date-col, --desc-col and --amount-col flags", args[0])
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

			report := ingest.Import(l, rows, m, cls)
			if err := a.saveLedger(cfg, l); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d transaction(s)", report.Added)
			if report.Hidden > 0 {
				fmt.Fprintf(out, ", %d hidden", report.Hidden)
			}
			if report.Duplicates > 0 {
				fmt.Fprintf(out, ", %d duplicate(s) skipped", report.Duplicates)
			}
			if report.Rejected > 0 {
				fmt.Fprintf(out, ", %d row(s) unreadable", report.Rejected)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().IntVar(&dateCol, "date-col", -1, "date column index (0-based), overriding detection")
	cmd.Flags().IntVar(&descCol, "desc-col", -1, "description column index (0-based), overriding detection")
	cmd.Flags().IntVar(&amountCol, "amount-col", -1, "amount column index (0-based), overriding detection")

	return cmd
}
