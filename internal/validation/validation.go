package validation

import (
	"fmt"
	"strings"

	"github.com/ritual-cli/ritual/internal/models"
)

type ConflictType string

const (
	ConflictDuplicateID      ConflictType = "duplicate_id"
	ConflictBadPeriodicity   ConflictType = "bad_periodicity"
	ConflictUnsortedHistory  ConflictType = "unsorted_history"
	ConflictStreakInvariant  ConflictType = "streak_invariant"
	ConflictNegativeCounters ConflictType = "negative_counters"
)

// Conflict describes one integrity violation in a loaded document.
type Conflict struct {
	Type    ConflictType
	HabitID int
	Message string
}

type Result struct {
	Conflicts []Conflict
}

func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

func (r Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No integrity problems found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d integrity problem(s):\n", len(r.Conflicts))
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "  - habit %d [%s]: %s\n", c.HabitID, c.Type, c.Message)
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateUser checks the invariants every persisted document must satisfy:
// unique habit IDs, positive periodicity, ascending history, and
// longest_streak >= streak with no negative counters.
func (v *Validator) ValidateUser(u *models.User) Result {
	var result Result

	seen := make(map[int]bool)
	for _, h := range u.Habits {
		if seen[h.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictDuplicateID,
				HabitID: h.ID,
				Message: "habit ID appears more than once",
			})
		}
		seen[h.ID] = true

		if err := h.Periodicity.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictBadPeriodicity,
				HabitID: h.ID,
				Message: err.Error(),
			})
		}

		for i := 1; i < len(h.History); i++ {
			if h.History[i].Before(h.History[i-1]) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:    ConflictUnsortedHistory,
					HabitID: h.ID,
					Message: fmt.Sprintf("check-in %d is earlier than its predecessor", i),
				})
				break
			}
		}

		if h.Streak < 0 || h.LongestStreak < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictNegativeCounters,
				HabitID: h.ID,
				Message: fmt.Sprintf("negative streak counters %d/%d", h.Streak, h.LongestStreak),
			})
		} else if h.LongestStreak < h.Streak {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:    ConflictStreakInvariant,
				HabitID: h.ID,
				Message: fmt.Sprintf("longest streak %d is below current streak %d", h.LongestStreak, h.Streak),
			})
		}
	}

	return result
}
