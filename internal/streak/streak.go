package streak

import (
	"time"

	"github.com/ritual-cli/ritual/internal/models"
)

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Compute returns the current streak for a check-in history: the number of
// consecutive, non-overlapping periods walked backward from the anchor that
// each contain at least `frequency` check-ins.
//
// The history must be sorted ascending. The reference time may be the zero
// time, meaning no override. The anchor is the reference only when it falls
// strictly before the latest check-in; a reference at or after the latest
// check-in is ignored in favor of the check-in itself, so the anchor never
// moves later than the data.
//
// Window bounds are inclusive on both ends, so a check-in landing exactly on
// a boundary counts toward both adjoining windows. Each window still spans
// exactly periodDays, and a single window below the frequency threshold ends
// the walk: satisfied periods further in the past do not count.
func (e *Engine) Compute(history []time.Time, frequency, periodDays int, reference time.Time) int {
	if len(history) == 0 {
		return 0
	}

	last := history[len(history)-1]
	anchor := last
	if !reference.IsZero() && reference.Before(last) {
		anchor = reference
	}

	period := time.Duration(periodDays) * 24 * time.Hour
	count := 0
	end := anchor
	start := end.Add(-period)

	for {
		if countWithin(history, start, end) < frequency {
			break
		}
		count++
		end = start
		start = end.Add(-period)
	}

	return count
}

// Update recomputes the habit's streak counters in place. The current streak
// is overwritten; the longest streak only ever grows.
func (e *Engine) Update(h *models.Habit, reference time.Time) {
	h.Streak = e.Compute(h.History, h.Periodicity.Frequency, h.Periodicity.Period, reference)
	if h.Streak > h.LongestStreak {
		h.LongestStreak = h.Streak
	}
}

// countWithin counts timestamps t with start <= t <= end.
func countWithin(history []time.Time, start, end time.Time) int {
	n := 0
	for _, t := range history {
		if !t.Before(start) && !t.After(end) {
			n++
		}
	}
	return n
}
