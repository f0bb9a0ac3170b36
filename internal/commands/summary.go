package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/skint-dev/skint/internal/aggregate"
)

type summaryOutput struct {
	CycleStart       string     `json:"cycle_start"`
	CycleEnd         string     `json:"cycle_end"`
	DaysInto         int        `json:"days_into"`
	DaysLeft         int        `json:"days_left"`
	Income           float64    `json:"income"`
	Spent            float64    `json:"spent"`
	Available        float64    `json:"available"`
	Budget           float64    `json:"budget"`
	PaceStatus       string     `json:"pace_status"`
	SpentRatio       float64    `json:"spent_ratio"`
	Progress         float64    `json:"progress"`
	Velocity         float64    `json:"velocity,omitempty"`
	NoSpendDays      int        `json:"no_spend_days"`
	TopCategory      string     `json:"top_category,omitempty"`
	TopCategoryTotal float64    `json:"top_category_total,omitempty"`
	TopSpends        []topSpend `json:"top_spends,omitempty"`
	Essential        float64    `json:"essential"`
	Discretionary    float64    `json:"discretionary"`
	PotentialSavings float64    `json:"potential_savings"`
	HiddenCount      int        `json:"hidden_count,omitempty"`
}

type topSpend struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
}

func newSummaryCommand(a *app) *cobra.Command {
	var period string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the current cycle at a glance",
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

			txs := l.Transactions
			income := aggregate.CycleIncome(txs, w)
			spent := aggregate.CycleExpense(txs, w)
			available := aggregate.AvailableCash(txs, w)
			pace := aggregate.BudgetPace(spent, l.Budget, w)
			velocity, velocityOK := aggregate.Velocity(spent, w)
			noSpend := 0
			if !w.Start.IsZero() {
				noSpend = aggregate.NoSpendDays(txs, w, a.today())
			}
			top, topOK := aggregate.TopCategory(txs, w)
			topSpends := aggregate.TopSpends(txs, w, 5)
			split := aggregate.EssentialSplit(txs, w)

			out := cmd.OutOrStdout()
			if asJSON {
				o := summaryOutput{
					DaysInto:         w.DaysInto,
					DaysLeft:         w.DaysLeft,
					Income:           f64(income),
					Spent:            f64(spent),
					Available:        f64(available),
					Budget:           f64(l.Budget),
					PaceStatus:       string(pace.Status),
					SpentRatio:       pace.SpentRatio,
					Progress:         pace.Progress,
					NoSpendDays:      noSpend,
					Essential:        f64(split.Essential),
					Discretionary:    f64(split.Discretionary),
					PotentialSavings: f64(split.PotentialSavings),
					HiddenCount:      l.HiddenCount(),
				}
				if !w.Start.IsZero() {
					o.CycleStart = w.Start.Format("2006-01-02")
					o.CycleEnd = w.End.Format("2006-01-02")
				}
				if velocityOK {
					o.Velocity = f64(velocity)
				}
				if topOK {
					o.TopCategory = top.Category
					o.TopCategoryTotal = f64(top.Total)
				}
				for _, tx := range topSpends {
					o.TopSpends = append(o.TopSpends, topSpend{
						Description: tx.Description,
						Category:    tx.Category,
						Date:        tx.Date.Format("2006-01-02"),
						Amount:      f64(tx.Amount),
					})
				}
				return writeJSON(out, o)
			}

			if w.Start.IsZero() {
				fmt.Fprintln(out, "All time")
			} else {
				fmt.Fprintf(out, "Cycle %s to %s (day %d, %d left)\n",
					w.Start.Format("Mon 2 Jan"), w.End.Format("Mon 2 Jan"), w.DaysInto, w.DaysLeft)
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendRows([]table.Row{
				{"Income", text.FgGreen.Sprint(money(income))},
				{"Spent", money(spent)},
				{"Available", money(available)},
				{"Budget", money(l.Budget)},
			})
			t.AppendSeparator()
			t.AppendRows([]table.Row{
				{"Essential", money(split.Essential)},
				{"Discretionary", money(split.Discretionary)},
				{"Could save", money(split.PotentialSavings)},
			})
			t.SetStyle(table.StyleRounded)
			t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
			t.Render()

			status := string(pace.Status)
			switch pace.Status {
			case aggregate.PaceOverspending:
				status = text.FgRed.Sprint(status)
			case aggregate.PaceUnder:
				status = text.FgGreen.Sprint(status)
			}
			fmt.Fprintf(out, "Pace: %s (%.0f%% of budget spent, %.0f%% through the cycle)\n",
				status, pace.SpentRatio*100, pace.Progress*100)
			if velocityOK && !w.Start.IsZero() {
				fmt.Fprintf(out, "At this rate: %s by payday\n", money(velocity))
			}
			if !w.Start.IsZero() {
				fmt.Fprintf(out, "No-spend days: %d\n", noSpend)
			}
			if topOK {
				fmt.Fprintf(out, "Top category: %s (%s)\n", top.Category, money(top.Total))
			}
			if len(topSpends) > 0 {
				fmt.Fprintln(out, "Biggest spends:")
				for _, tx := range topSpends {
					fmt.Fprintf(out, "  %s  %s (%s)\n", tx.Date.Format("02 Jan"), tx.Description, money(tx.Amount))
				}
			}
			if n := l.HiddenCount(); n > 0 {
				fmt.Fprintf(out, "%d hidden transaction(s) excluded\n", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "current", "cycle to show: current, last, or all")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
