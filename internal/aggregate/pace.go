package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/skint-dev/skint/internal/cycle"
)

// PaceStatus describes spend-vs-time through the cycle.
type PaceStatus string

const (
	PaceOverspending PaceStatus = "overspending" // spent ratio > progress + 0.15
	PaceAhead        PaceStatus = "ahead"        // spent ratio > progress + 0.05
	PaceOnTrack      PaceStatus = "on-track"
	PaceUnder        PaceStatus = "under" // spent ratio < progress - 0.10, after 25% of cycle
)

// Pace compares budget consumed against cycle elapsed.
type Pace struct {
	SpentRatio float64 // spent / budget, uncapped
	Progress   float64 // daysIntoCycle / cycle length, capped at 1
	Status     PaceStatus
}

// BudgetPace evaluates how spending tracks the cycle clock. A zero or
// negative budget reports a zero spent ratio rather than dividing by it.
func BudgetPace(spent, budget decimal.Decimal, w cycle.Window) Pace {
	length := w.DaysInto + w.DaysLeft
	progress := 1.0
	if length > 0 {
		progress = float64(w.DaysInto) / float64(length)
	}
	if progress > 1 {
		progress = 1
	}

	spentRatio := 0.0
	if budget.IsPositive() {
		spentRatio, _ = spent.Div(budget).Float64()
	}

	p := Pace{SpentRatio: spentRatio, Progress: progress, Status: PaceOnTrack}
	switch {
	case spentRatio > progress+0.15:
		p.Status = PaceOverspending
	case spentRatio > progress+0.05:
		p.Status = PaceAhead
	case spentRatio < progress-0.10 && progress > 0.25:
		p.Status = PaceUnder
	}
	return p
}

// Velocity projects the full-cycle spend from the run rate so far:
// spent / daysInto * length. The second result is false outside the current
// cycle or before any spending happens.
func Velocity(spent decimal.Decimal, w cycle.Window) (decimal.Decimal, bool) {
	if w.DaysInto <= 0 || !spent.IsPositive() {
		return decimal.Zero, false
	}
	length := w.DaysInto + w.DaysLeft
	projected := spent.Div(decimal.NewFromInt(int64(w.DaysInto))).Mul(decimal.NewFromInt(int64(length)))
	return projected, true
}
