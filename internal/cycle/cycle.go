// Package cycle computes fixed-length pay cycles tiled from an anchor payday.
// Cycles cover every calendar date with no gaps or overlaps, so for any date
// exactly one cycle contains it.
package cycle

import (
	"time"

	"github.com/skint-dev/skint/internal/model"
)

// DefaultLength is the standard pay cycle length in days.
const DefaultLength = 28

// Calendar tiles cycles of a fixed day length forward and backward from a
// known payday.
type Calendar struct {
	Anchor time.Time
	Length int
}

// Window is one cycle. Start and End are inclusive date bounds. DaysInto and
// DaysLeft are only meaningful for the cycle containing today (offset 0);
// other windows carry the fixed pair (Length, 0).
type Window struct {
	Start    time.Time
	End      time.Time
	DaysInto int
	DaysLeft int
}

// New returns a Calendar with the default cycle length.
func New(anchor time.Time) Calendar {
	return Calendar{Anchor: model.Day(anchor), Length: DefaultLength}
}

// At returns the cycle window at the given offset from the cycle containing
// today: 0 is current, -1 previous, and so on. Any integer offset is accepted.
//
// The containing cycle is found by integer cycle-count arithmetic, so the
// result is exact in O(1) for dates arbitrarily far from the anchor.
func (c Calendar) At(offset int, today time.Time) Window {
	length := c.Length
	if length <= 0 {
		length = DefaultLength
	}
	anchor := model.Day(c.Anchor)
	now := model.Day(today)

	elapsed := daysBetween(anchor, now)
	cycles := floorDiv(elapsed, length)

	start := anchor.AddDate(0, 0, (cycles+offset)*length)
	end := start.AddDate(0, 0, length-1)

	daysInto := length
	daysLeft := 0
	if offset == 0 {
		daysInto = elapsed - cycles*length + 1
		daysLeft = length - daysInto
	}

	return Window{Start: start, End: end, DaysInto: daysInto, DaysLeft: daysLeft}
}

// Contains reports whether the window includes the given date, time truncated.
func (w Window) Contains(date time.Time) bool {
	d := model.Day(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// InCycle reports whether date falls in the cycle at offset relative to today.
func (c Calendar) InCycle(date time.Time, offset int, today time.Time) bool {
	return c.At(offset, today).Contains(date)
}

// daysBetween returns whole calendar days from a to b (negative when b is
// earlier). Both arguments must already be midnight UTC. The delta is taken
// over Unix seconds because time.Time.Sub saturates at the Duration range
// (about 292 years), which would truncate far dates.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / 86400)
}

// floorDiv divides rounding toward negative infinity, which Go's integer
// division does not.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
