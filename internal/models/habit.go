package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Periodicity describes how often a habit should be completed:
// Frequency occurrences within any Period-day window.
// Daily is (1,1), weekly is (1,7), "3 times a week" is (3,7).
type Periodicity struct {
	Frequency int
	Period    int
}

// Validate checks that both parts are positive integers.
func (p Periodicity) Validate() error {
	if p.Frequency < 1 || p.Period < 1 {
		return fmt.Errorf("%w: got (%d, %d)", ErrInvalidPeriodicity, p.Frequency, p.Period)
	}
	return nil
}

func (p Periodicity) String() string {
	return fmt.Sprintf("%d time(s) every %d day(s)", p.Frequency, p.Period)
}

// MarshalJSON encodes the periodicity as a two-element array [frequency, period].
func (p Periodicity) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Frequency, p.Period})
}

func (p *Periodicity) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("periodicity must be a two-element array, got %d elements", len(pair))
	}
	p.Frequency = pair[0]
	p.Period = pair[1]
	return nil
}

// Habit represents a recurring practice with its check-in history and
// streak counters.
type Habit struct {
	ID            int         `json:"habit_id"`
	Name          string      `json:"name"`
	Periodicity   Periodicity `json:"periodicity"`
	History       []time.Time `json:"history"`
	Streak        int         `json:"streak"`
	LongestStreak int         `json:"longest_streak"`
	CreatedAt     time.Time   `json:"creation"`
}

// NewHabit creates a habit with a fresh ID from the allocator and an empty
// check-in history. Returns ErrInvalidPeriodicity if the periodicity is not
// a pair of positive integers.
func NewHabit(alloc *IDAllocator, name string, p Periodicity, createdAt time.Time) (*Habit, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Habit{
		ID:          alloc.Next(),
		Name:        name,
		Periodicity: p,
		History:     []time.Time{},
		CreatedAt:   createdAt,
	}, nil
}

// CheckIn records a completion at the given time and keeps the history
// sorted ascending. Duplicate timestamps are allowed. This is the only
// mutation entrypoint for the history, so the sorted invariant holds
// everywhere downstream.
func (h *Habit) CheckIn(at time.Time) {
	h.History = append(h.History, at)
	sort.Slice(h.History, func(i, j int) bool {
		return h.History[i].Before(h.History[j])
	})
}

// SetPeriodicity changes the habit's periodicity in place. Recorded streak
// counters are untouched; only future computations use the new values.
func (h *Habit) SetPeriodicity(p Periodicity) error {
	if err := p.Validate(); err != nil {
		return err
	}
	h.Periodicity = p
	return nil
}

func (h *Habit) String() string {
	return fmt.Sprintf("[%d] %s (%s)", h.ID, h.Name, h.Periodicity)
}
