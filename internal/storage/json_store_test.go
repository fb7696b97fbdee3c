package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ritual-cli/ritual/internal/models"
)

var checkin = time.Date(2025, 6, 2, 18, 45, 30, 500000000, time.UTC)

func newTestUser(t *testing.T, alloc *models.IDAllocator) *models.User {
	t.Helper()

	user := models.NewUser("Test User")
	h, err := models.NewHabit(alloc, "Brush Teeth", models.Periodicity{Frequency: 1, Period: 1}, checkin.AddDate(0, 0, -28))
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	h.CheckIn(checkin)
	h.CheckIn(checkin.AddDate(0, 0, -1))
	h.Streak = 2
	h.LongestStreak = 9
	user.AddHabit(h)
	return user
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ritual.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.SetUser(newTestUser(t, store.Allocator())); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}

	// Fresh store from the same file.
	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	user, err := reloaded.User()
	if err != nil {
		t.Fatalf("User failed: %v", err)
	}

	if user.Name != "Test User" || len(user.Habits) != 1 {
		t.Fatalf("expected Test User with 1 habit, got %q with %d", user.Name, len(user.Habits))
	}
	h := user.Habits[0]
	if h.Periodicity != (models.Periodicity{Frequency: 1, Period: 1}) {
		t.Errorf("periodicity not preserved: %+v", h.Periodicity)
	}
	if h.Streak != 2 || h.LongestStreak != 9 {
		t.Errorf("expected counters 2/9, got %d/%d", h.Streak, h.LongestStreak)
	}
	if len(h.History) != 2 || !h.History[1].Equal(checkin) {
		t.Errorf("history not preserved timestamp-for-timestamp: %v", h.History)
	}
}

func TestJSONStore_AllocatorSeededFromDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ritual.json")

	store := NewJSONStore(path)
	user := models.NewUser("Test User")
	h, err := models.NewHabit(store.Allocator(), "x", models.Periodicity{Frequency: 1, Period: 1}, checkin)
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	h.ID = 7 // simulate a document written by a longer-lived process
	user.AddHabit(h)
	if err := store.SetUser(user); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}

	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	fresh, err := models.NewHabit(reloaded.Allocator(), "y", models.Periodicity{Frequency: 1, Period: 7}, checkin)
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	if fresh.ID < 8 {
		t.Errorf("expected new habit ID >= 8 after loading a document with ID 7, got %d", fresh.ID)
	}
}

func TestJSONStore_MissingFileMeansNoUser(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "ritual.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load of missing file should not error, got: %v", err)
	}
	if _, err := store.User(); !errors.Is(err, models.ErrNoUser) {
		t.Errorf("expected ErrNoUser, got %v", err)
	}
}

func TestJSONStore_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ritual.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); !errors.Is(err, models.ErrCorruptStore) {
		t.Errorf("expected ErrCorruptStore, got %v", err)
	}
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ritual.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.SetUser(models.NewUser("Test User")); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}

	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected error initializing over an existing file")
	}
}

func TestJSONStore_DeleteAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ritual.json")

	store := NewJSONStore(path)
	if err := store.SetUser(newTestUser(t, store.Allocator())); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}
	if err := store.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected storage file to be removed")
	}
	if _, err := store.User(); !errors.Is(err, models.ErrNoUser) {
		t.Errorf("expected ErrNoUser after DeleteAll, got %v", err)
	}

	// Deleting again is fine.
	if err := store.DeleteAll(); err != nil {
		t.Errorf("repeated DeleteAll failed: %v", err)
	}
}
