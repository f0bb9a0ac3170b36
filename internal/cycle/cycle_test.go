package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAt_TodayOnAnchor(t *testing.T) {
	cal := New(date(2026, 2, 5))
	w := cal.At(0, date(2026, 2, 5))

	assert.Equal(t, date(2026, 2, 5), w.Start)
	assert.Equal(t, date(2026, 3, 4), w.End)
	assert.Equal(t, 1, w.DaysInto)
	assert.Equal(t, 27, w.DaysLeft)
}

func TestAt_TodayBeforeAnchor(t *testing.T) {
	cal := New(date(2026, 2, 5))
	w := cal.At(0, date(2026, 1, 20))

	assert.Equal(t, date(2026, 1, 8), w.Start)
	assert.Equal(t, date(2026, 2, 4), w.End)
	assert.Equal(t, 13, w.DaysInto)
	assert.Equal(t, 15, w.DaysLeft)
}

func TestAt_LastDayOfCycle(t *testing.T) {
	cal := New(date(2026, 2, 5))
	w := cal.At(0, date(2026, 3, 4))

	assert.Equal(t, 28, w.DaysInto)
	assert.Equal(t, 0, w.DaysLeft, "payday eve has zero days left")
}

func TestAt_NonzeroOffsetFixedDayCounts(t *testing.T) {
	cal := New(date(2026, 2, 5))
	w := cal.At(-1, date(2026, 2, 10))

	assert.Equal(t, date(2026, 1, 8), w.Start)
	assert.Equal(t, date(2026, 2, 4), w.End)
	assert.Equal(t, 28, w.DaysInto)
	assert.Equal(t, 0, w.DaysLeft)
}

func TestAt_FarFromAnchor(t *testing.T) {
	cal := New(date(2026, 2, 5))

	// Far from the anchor in both directions, including dates beyond the
	// ~292-year time.Duration range, still lands on exact boundaries.
	for _, today := range []time.Time{
		date(1990, 7, 1),
		date(2080, 11, 30),
		date(1600, 3, 14),
		date(2500, 7, 19),
		date(9999, 12, 31),
	} {
		w := cal.At(0, today)
		require.True(t, w.Contains(today), "today %s must fall in its own cycle", today)
		assert.Equal(t, 27, daysBetween(w.Start, w.End))
		// The start is a whole number of cycles from the anchor.
		assert.Zero(t, daysBetween(cal.Anchor, w.Start)%28)
	}
}

func TestTiling_ContiguousNoGapNoOverlap(t *testing.T) {
	cal := New(date(2026, 2, 5))
	today := date(2026, 6, 15)

	for offset := -5; offset < 5; offset++ {
		cur := cal.At(offset, today)
		next := cal.At(offset+1, today)
		assert.Equal(t, next.Start, cur.End.AddDate(0, 0, 1),
			"cycle %d end + 1 day must equal cycle %d start", offset, offset+1)
	}
}

func TestTiling_ExactlyOneCycleContainsAnyDate(t *testing.T) {
	cal := New(date(2026, 2, 5))
	today := date(2026, 6, 15)

	// Sweep a year of dates; each must be in exactly one of the nearby cycles.
	for d := date(2026, 1, 1); d.Before(date(2027, 1, 1)); d = d.AddDate(0, 0, 1) {
		hits := 0
		for offset := -20; offset <= 20; offset++ {
			if cal.At(offset, today).Contains(d) {
				hits++
			}
		}
		require.Equal(t, 1, hits, "date %s", d.Format("2006-01-02"))
	}
}

func TestContains_InclusiveBounds(t *testing.T) {
	cal := New(date(2026, 2, 5))
	w := cal.At(0, date(2026, 2, 10))

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.AddDate(0, 0, -1)))
	assert.False(t, w.Contains(w.End.AddDate(0, 0, 1)))
}

func TestContains_TruncatesTime(t *testing.T) {
	cal := New(date(2026, 2, 5))
	w := cal.At(0, date(2026, 2, 10))

	lateOnEndDay := w.End.Add(23*time.Hour + 59*time.Minute)
	assert.True(t, w.Contains(lateOnEndDay))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, floorDiv(27, 28))
	assert.Equal(t, 1, floorDiv(28, 28))
	assert.Equal(t, -1, floorDiv(-1, 28))
	assert.Equal(t, -1, floorDiv(-28, 28))
	assert.Equal(t, -2, floorDiv(-29, 28))
}
