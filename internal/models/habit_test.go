package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var created = time.Date(2025, 5, 1, 7, 30, 0, 123456789, time.UTC)

func TestNewHabit_RejectsInvalidPeriodicity(t *testing.T) {
	alloc := NewIDAllocator()

	bad := []Periodicity{
		{Frequency: 0, Period: 1},
		{Frequency: 1, Period: 0},
		{Frequency: -3, Period: 7},
	}
	for _, p := range bad {
		if _, err := NewHabit(alloc, "x", p, created); !errors.Is(err, ErrInvalidPeriodicity) {
			t.Errorf("periodicity (%d,%d): expected ErrInvalidPeriodicity, got %v", p.Frequency, p.Period, err)
		}
	}

	// Rejected creations must not burn IDs.
	h, err := NewHabit(alloc, "ok", Periodicity{Frequency: 1, Period: 1}, created)
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	if h.ID != 0 {
		t.Errorf("expected first valid habit to get ID 0, got %d", h.ID)
	}
}

func TestCheckIn_KeepsHistorySorted(t *testing.T) {
	alloc := NewIDAllocator()
	h, err := NewHabit(alloc, "Exercise", Periodicity{Frequency: 1, Period: 1}, created)
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}

	// Out-of-order and duplicate check-ins.
	h.CheckIn(created.AddDate(0, 0, 2))
	h.CheckIn(created)
	h.CheckIn(created.AddDate(0, 0, 1))
	h.CheckIn(created)

	if len(h.History) != 4 {
		t.Fatalf("expected 4 check-ins (duplicates kept), got %d", len(h.History))
	}
	for i := 1; i < len(h.History); i++ {
		if h.History[i].Before(h.History[i-1]) {
			t.Fatalf("history not sorted ascending at index %d", i)
		}
	}
}

func TestSetPeriodicity(t *testing.T) {
	alloc := NewIDAllocator()
	h, err := NewHabit(alloc, "Read", Periodicity{Frequency: 1, Period: 1}, created)
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	h.Streak = 3
	h.LongestStreak = 6

	if err := h.SetPeriodicity(Periodicity{Frequency: 3, Period: 0}); !errors.Is(err, ErrInvalidPeriodicity) {
		t.Errorf("expected ErrInvalidPeriodicity, got %v", err)
	}
	if err := h.SetPeriodicity(Periodicity{Frequency: 3, Period: 7}); err != nil {
		t.Fatalf("SetPeriodicity failed: %v", err)
	}

	// Editing periodicity never rewrites recorded counters.
	if h.Streak != 3 || h.LongestStreak != 6 {
		t.Errorf("expected counters 3/6 untouched, got %d/%d", h.Streak, h.LongestStreak)
	}
}

func TestPeriodicityJSON_TwoElementArray(t *testing.T) {
	data, err := json.Marshal(Periodicity{Frequency: 3, Period: 7})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "[3,7]" {
		t.Errorf("expected [3,7], got %s", data)
	}

	var p Periodicity
	if err := json.Unmarshal([]byte("[1,7]"), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if p.Frequency != 1 || p.Period != 7 {
		t.Errorf("expected (1,7), got (%d,%d)", p.Frequency, p.Period)
	}

	if err := json.Unmarshal([]byte("[1,7,3]"), &p); err == nil {
		t.Error("expected error for a three-element periodicity")
	}
}

func TestUserJSON_RoundTrip(t *testing.T) {
	alloc := NewIDAllocator()
	user := NewUser("Test User")

	h, err := NewHabit(alloc, "Meditate", Periodicity{Frequency: 5, Period: 7}, created)
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	h.CheckIn(created.Add(26 * time.Hour))
	h.CheckIn(created.Add(100*time.Hour + 123*time.Nanosecond))
	h.Streak = 2
	h.LongestStreak = 4
	user.AddHabit(h)

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var restored User
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if restored.Name != user.Name || len(restored.Habits) != 1 {
		t.Fatalf("expected user %q with 1 habit, got %q with %d", user.Name, restored.Name, len(restored.Habits))
	}

	got := restored.Habits[0]
	if got.ID != h.ID || got.Name != h.Name || got.Periodicity != h.Periodicity {
		t.Errorf("habit identity not preserved: got %+v", got)
	}
	if got.Streak != 2 || got.LongestStreak != 4 {
		t.Errorf("expected counters 2/4, got %d/%d", got.Streak, got.LongestStreak)
	}
	if !got.CreatedAt.Equal(h.CreatedAt) {
		t.Errorf("creation time not preserved: %v != %v", got.CreatedAt, h.CreatedAt)
	}
	if len(got.History) != len(h.History) {
		t.Fatalf("expected %d check-ins, got %d", len(h.History), len(got.History))
	}
	for i := range got.History {
		if !got.History[i].Equal(h.History[i]) {
			t.Errorf("check-in %d lost precision: %v != %v", i, got.History[i], h.History[i])
		}
	}
}

func TestUser_DeleteHabit(t *testing.T) {
	alloc := NewIDAllocator()
	user := NewUser("Test User")
	for _, name := range []string{"a", "b", "c"} {
		h, err := NewHabit(alloc, name, Periodicity{Frequency: 1, Period: 1}, created)
		if err != nil {
			t.Fatalf("NewHabit failed: %v", err)
		}
		user.AddHabit(h)
	}

	if err := user.DeleteHabit(1); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if len(user.Habits) != 2 {
		t.Fatalf("expected 2 habits after delete, got %d", len(user.Habits))
	}
	if _, err := user.FindHabit(1); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound after delete, got %v", err)
	}
	if err := user.DeleteHabit(1); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound for double delete, got %v", err)
	}

	// A deleted ID is never handed out again.
	h, err := NewHabit(alloc, "d", Periodicity{Frequency: 1, Period: 1}, created)
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	if h.ID != 3 {
		t.Errorf("expected next ID 3, got %d", h.ID)
	}
}

func TestIDAllocator_SeedRaisesHighWaterMark(t *testing.T) {
	alloc := NewIDAllocator()
	alloc.Seed(7)
	if id := alloc.Next(); id != 8 {
		t.Errorf("expected 8 after seeding with 7, got %d", id)
	}

	// Seeding below the mark changes nothing.
	alloc.Seed(2)
	if id := alloc.Next(); id != 9 {
		t.Errorf("expected 9, got %d", id)
	}

	// Seeding an empty collection (-1) leaves the counter at zero.
	fresh := NewIDAllocator()
	fresh.Seed(-1)
	if id := fresh.Next(); id != 0 {
		t.Errorf("expected 0 for fresh allocator, got %d", id)
	}
}
