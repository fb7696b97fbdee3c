package analytics

import (
	"time"

	"github.com/ritual-cli/ritual/internal/models"
	"github.com/ritual-cli/ritual/internal/streak"
)

// Reporter answers read-only questions over a user's habit collection.
// Every operation recomputes streaks through the engine before reporting,
// anchored at the latest check-in (no reference override).
type Reporter struct {
	engine *streak.Engine
}

func New(engine *streak.Engine) *Reporter {
	return &Reporter{engine: engine}
}

// AllHabits returns every tracked habit in insertion order, with streak
// counters refreshed.
func (r *Reporter) AllHabits(u *models.User) []*models.Habit {
	for _, h := range u.Habits {
		r.engine.Update(h, time.Time{})
	}
	return u.Habits
}

// HabitsByPeriodicity returns the habits whose periodicity matches exactly,
// preserving their relative order.
func (r *Reporter) HabitsByPeriodicity(u *models.User, p models.Periodicity) []*models.Habit {
	var matched []*models.Habit
	for _, h := range u.Habits {
		if h.Periodicity == p {
			r.engine.Update(h, time.Time{})
			matched = append(matched, h)
		}
	}
	return matched
}

// LongestStreakOverall returns the maximum longest-streak across all habits,
// or 0 when the user tracks none.
func (r *Reporter) LongestStreakOverall(u *models.User) int {
	longest := 0
	for _, h := range u.Habits {
		r.engine.Update(h, time.Time{})
		if h.LongestStreak > longest {
			longest = h.LongestStreak
		}
	}
	return longest
}

// LongestStreakFor returns the longest streak for one habit. A missing ID is
// reported through ErrHabitNotFound, distinct from a legitimate zero streak.
func (r *Reporter) LongestStreakFor(u *models.User, habitID int) (int, error) {
	h, err := u.FindHabit(habitID)
	if err != nil {
		return 0, err
	}
	r.engine.Update(h, time.Time{})
	return h.LongestStreak, nil
}
