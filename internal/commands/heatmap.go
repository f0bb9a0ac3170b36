package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/aggregate"
)

func newHeatmapCommand(a *app) *cobra.Command {
	var period string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Spending by day of the week",
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

			buckets := aggregate.Heatmap(l.Transactions, w)
			busiest, busiestOK := aggregate.BusiestDay(buckets)
			out := cmd.OutOrStdout()

			if asJSON {
				type dayRow struct {
					Day       string  `json:"day"`
					Total     float64 `json:"total"`
					Count     int     `json:"count"`
					Average   float64 `json:"average"`
					Intensity float64 `json:"intensity"`
				}
				rows := make([]dayRow, 0, len(buckets))
				for _, b := range buckets {
					rows = append(rows, dayRow{
						Day:       b.Day,
						Total:     f64(b.Total),
						Count:     b.Count,
						Average:   f64(b.Average),
						Intensity: b.Intensity,
					})
				}
				return writeJSON(out, rows)
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"Day", "Spent", "Txns", "Avg", ""})
			for _, b := range buckets {
				bar := strings.Repeat("█", int(b.Intensity*10+0.5))
				t.AppendRow(table.Row{b.Day, money(b.Total), b.Count, money(b.Average), bar})
			}
			t.SetStyle(table.StyleRounded)
			t.Style().Format.Header = text.FormatDefault
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignRight},
				{Number: 4, Align: text.AlignRight},
			})
			t.Render()

			if busiestOK {
				fmt.Fprintf(out, "Biggest spending day: %s (%s)\n", busiest.Day, money(busiest.Total))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "current", "cycle to show: current, last, or all")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
