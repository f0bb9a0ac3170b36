package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/ingest"
	"github.com/skint-dev/skint/internal/project"
)

type projectionOutput struct {
	DailyRate float64          `json:"daily_rate"`
	Broke     bool             `json:"broke"`
	BrokeDay  int              `json:"broke_day,omitempty"`
	Days      []projectionStep `json:"days"`
}

type projectionStep struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Balance float64 `json:"balance"`
	Danger  bool    `json:"danger"`
}

func newProjectCommand(a *app) *cobra.Command {
	var balanceFlag string
	var horizon int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the balance forward at the current burn rate",
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

			starting := l.Balance
			if balanceFlag != "" {
				parsed, ok := ingest.ParseAmount(balanceFlag)
				if !ok {
					return fmt.Errorf("invalid balance %q", balanceFlag)
				}
				starting = parsed
			}

			res := project.Balance(l.Transactions, starting, horizon, a.today())
			out := cmd.OutOrStdout()

			if !res.HasData {
				if asJSON {
					return writeJSON(out, projectionOutput{})
				}
				fmt.Fprintln(out, "No spending history to project from.")
				return nil
			}

			if asJSON {
				o := projectionOutput{
					DailyRate: f64(res.DailyRate),
					Broke:     res.Broke,
					BrokeDay:  res.BrokeDay,
				}
				for _, d := range res.Days {
					o.Days = append(o.Days, projectionStep{
						Date:    d.Date.Format("2006-01-02"),
						Label:   d.Label,
						Balance: f64(d.Balance),
						Danger:  d.Danger,
					})
				}
				return writeJSON(out, o)
			}

			fmt.Fprintf(out, "Burning %s/day from %s\n", money(res.DailyRate), money(starting))
			if res.Broke {
				fmt.Fprintf(out, "%s\n", text.FgRed.Sprintf("Out of money around %s (day %d)",
					res.Days[res.BrokeDay].Date.Format("Mon 2 Jan"), res.BrokeDay))
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"Day", "Date", "Balance"})
			for _, d := range res.Days {
				balStr := money(d.Balance)
				if d.Danger {
					balStr = text.FgRed.Sprint(balStr)
				}
				t.AppendRow(table.Row{d.Label, d.Date.Format("2006-01-02"), balStr})
			}
			t.SetStyle(table.StyleRounded)
			t.Style().Format.Header = text.FormatDefault
			t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&balanceFlag, "balance", "", "starting balance (default the saved balance)")
	cmd.Flags().IntVar(&horizon, "days", project.DefaultHorizonDays, "days to project")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
