// Package recurring infers subscriptions and bills from repeated same-payee,
// same-amount, regularly-spaced expenses, and computes due dates for
// user-declared bills.
package recurring

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skint-dev/skint/internal/model"
)

// Config holds the detector's tuned constants. The defaults are empirically
// chosen thresholds, not derived values; they are exposed as configuration
// but changing them changes which payments qualify.
type Config struct {
	// AmountTolerance is the max absolute deviation of any occurrence from
	// the group's mean amount.
	AmountTolerance decimal.Decimal
	// DayTolerance is how far (in days) a monthly occurrence may sit from
	// the group's modal day-of-month.
	DayTolerance int
	// NearModeRatio is the minimum share of occurrences that must sit
	// within DayTolerance of the modal day for a monthly cadence.
	NearModeRatio float64
	// MaxAdvance caps the next-due advancing loop against malformed input.
	MaxAdvance int
	// KeyLength truncates normalized payee keys.
	KeyLength int
	// MinKeyLength discards keys too short to cluster reliably.
	MinKeyLength int
}

// DefaultConfig returns the stock detector tuning.
func DefaultConfig() Config {
	return Config{
		AmountTolerance: decimal.NewFromInt(3),
		DayTolerance:    3,
		NearModeRatio:   0.6,
		MaxAdvance:      100,
		KeyLength:       30,
		MinKeyLength:    3,
	}
}

// Detection is one inferred recurring payment.
type Detection struct {
	Name        string // display name, from the first occurrence
	Key         string // normalized payee key
	Amount      decimal.Decimal
	Frequency   model.Frequency
	Occurrences int
	LastSeen    time.Time
	NextDue     time.Time
	AnnualCost  decimal.Decimal
}

// Gap ranges (average days between occurrences) per cadence.
const (
	monthlyGapMin     = 24
	monthlyGapMax     = 37
	fortnightlyGapMin = 12
	fortnightlyGapMax = 16
	weeklyGapMin      = 5
	weeklyGapMax      = 9
)

var (
	datePattern     = regexp.MustCompile(`\b\d{1,4}[/-]\d{1,2}[/-]\d{1,4}\b`)
	longDigitRun    = regexp.MustCompile(`\d{6,}`)
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9 ]+`)
	multiSpace      = regexp.MustCompile(`\s+`)
)

var stopWords = map[string]bool{
	"payment": true, "paid": true, "ref": true, "reference": true,
	"transaction": true, "card": true, "direct": true, "debit": true,
	"ddr": true, "dd": true, "sto": true, "bgc": true, "ltd": true,
	"limited": true, "the": true, "to": true, "from": true,
}

// NormalizeKey reduces a raw expense description to a payee identity:
// lowercased, with embedded dates, long digit runs (reference numbers), stop
// words and punctuation removed, whitespace collapsed, and the result
// truncated to the configured prefix length. Keys shorter than the minimum
// are returned empty, meaning too generic to cluster.
func NormalizeKey(description string, cfg Config) string {
	s := strings.ToLower(description)
	s = datePattern.ReplaceAllString(s, " ")
	s = longDigitRun.ReplaceAllString(s, " ")
	s = nonAlphanumeric.ReplaceAllString(s, " ")

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if !stopWords[w] {
			kept = append(kept, w)
		}
	}
	s = strings.Join(kept, " ")

	if len(s) > cfg.KeyLength {
		s = strings.TrimSpace(s[:cfg.KeyLength])
	}
	if len(s) < cfg.MinKeyLength {
		return ""
	}
	return s
}

type occurrence struct {
	date   time.Time
	amount decimal.Decimal
	desc   string
}

// Detect clusters non-hidden expenses by normalized payee key and returns
// the groups that form a believable recurring pattern, sorted by soonest
// next due date. Groups with any amount outlier, an off-cadence average gap,
// or (for monthly) too irregular a day-of-month are rejected whole; there is
// no partial-match salvage.
func Detect(txs []model.Transaction, today time.Time, cfg Config) []Detection {
	groups := map[string][]occurrence{}
	for _, tx := range txs {
		if tx.Type != model.TypeExpense || model.Hidden(tx.Category) {
			continue
		}
		key := NormalizeKey(tx.Description, cfg)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], occurrence{
			date:   model.Day(tx.Date),
			amount: tx.Amount.Abs(),
			desc:   tx.Description,
		})
	}

	var out []Detection
	for key, occs := range groups {
		if d, ok := analyzeGroup(key, occs, today, cfg); ok {
			out = append(out, d)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].NextDue.Equal(out[j].NextDue) {
			return out[i].NextDue.Before(out[j].NextDue)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func analyzeGroup(key string, occs []occurrence, today time.Time, cfg Config) (Detection, bool) {
	// Fewer than two occurrences cannot establish a pattern.
	if len(occs) < 2 {
		return Detection{}, false
	}
	sort.SliceStable(occs, func(i, j int) bool { return occs[i].date.Before(occs[j].date) })

	mean := meanAmount(occs)
	for _, o := range occs {
		if o.amount.Sub(mean).Abs().GreaterThan(cfg.AmountTolerance) {
			return Detection{}, false
		}
	}

	avgGap := averageGapDays(occs)
	var freq model.Frequency
	switch {
	case avgGap >= monthlyGapMin && avgGap <= monthlyGapMax:
		freq = model.Monthly
	case avgGap >= fortnightlyGapMin && avgGap <= fortnightlyGapMax:
		freq = model.Fortnightly
	case avgGap >= weeklyGapMin && avgGap <= weeklyGapMax:
		freq = model.Weekly
	default:
		return Detection{}, false
	}

	if freq == model.Monthly && !dayOfMonthStable(occs, cfg) {
		return Detection{}, false
	}

	last := occs[len(occs)-1].date
	return Detection{
		Name:        occs[0].desc,
		Key:         key,
		Amount:      mean,
		Frequency:   freq,
		Occurrences: len(occs),
		LastSeen:    last,
		NextDue:     nextDue(last, freq, today, cfg.MaxAdvance),
		AnnualCost:  mean.Mul(decimal.NewFromInt(int64(freq.PeriodsPerYear()))),
	}, true
}

func meanAmount(occs []occurrence) decimal.Decimal {
	total := decimal.Zero
	for _, o := range occs {
		total = total.Add(o.amount)
	}
	return total.Div(decimal.NewFromInt(int64(len(occs))))
}

func averageGapDays(occs []occurrence) float64 {
	total := 0.0
	for i := 1; i < len(occs); i++ {
		total += occs[i].date.Sub(occs[i-1].date).Hours() / 24
	}
	return total / float64(len(occs)-1)
}

// dayOfMonthStable requires the configured share of occurrences to fall
// within the day tolerance of the modal day-of-month. Distance is circular
// over a 31-day month so occurrences straddling a month boundary (the 31st
// vs the 1st) still count as near.
func dayOfMonthStable(occs []occurrence, cfg Config) bool {
	counts := map[int]int{}
	for _, o := range occs {
		counts[o.date.Day()]++
	}
	mode, best := 0, 0
	for day, n := range counts {
		if n > best || (n == best && day < mode) {
			mode, best = day, n
		}
	}

	near := 0
	for _, o := range occs {
		if wrapDayDistance(o.date.Day(), mode) <= cfg.DayTolerance {
			near++
		}
	}
	return float64(near) >= cfg.NearModeRatio*float64(len(occs))
}

func wrapDayDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if wrapped := 31 - d; wrapped < d {
		return wrapped
	}
	return d
}

// nextDue advances from the latest occurrence by one period, then by whole
// further periods while the result is still in the past. Monthly advances
// clamp to the target month's last day when the anchor day does not exist
// there, without ratcheting the anchor day down for later months. The loop
// is capped as a safety valve against malformed input.
func nextDue(last time.Time, freq model.Frequency, today time.Time, maxAdvance int) time.Time {
	now := model.Day(today)
	base := model.Day(last)

	if freq == model.Monthly {
		anchorDay := base.Day()
		due := addMonthsClamped(base, 1, anchorDay)
		for months := 2; due.Before(now) && months <= maxAdvance; months++ {
			due = addMonthsClamped(base, months, anchorDay)
		}
		return due
	}

	step := freq.PeriodDays()
	due := base.AddDate(0, 0, step)
	for steps := 1; due.Before(now) && steps < maxAdvance; steps++ {
		due = due.AddDate(0, 0, step)
	}
	return due
}

// addMonthsClamped moves base forward by months keeping anchorDay as the
// day-of-month, clamped to the target month's length. This avoids Go's
// AddDate normalization, which would roll Jan 31 into early March.
func addMonthsClamped(base time.Time, months, anchorDay int) time.Time {
	y, m, _ := base.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := anchorDay
	if limit := daysInMonth(target.Year(), target.Month()); day > limit {
		day = limit
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
