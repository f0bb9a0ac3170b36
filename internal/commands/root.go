package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := newApp()

	rootCmd := &cobra.Command{
		Use:     "skint",
		Short:   "Pay-cycle budgeting from your bank statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "skint.yaml", "path to the config file")

	rootCmd.AddCommand(
		newInitCommand(a),
		newAddCommand(a),
		newListCommand(a),
		newImportCommand(a),
		newExportCommand(a),
		newSummaryCommand(a),
		newRecurringCommand(a),
		newBillCommand(a),
		newCardCommand(a),
		newProjectCommand(a),
		newHeatmapCommand(a),
		newAffordCommand(a),
		newSetCommand(a),
		newDeleteCommand(a),
		newEssentialCommand(a),
		newRecatCommand(a),
		newClearCommand(a),
	)

	return rootCmd
}
