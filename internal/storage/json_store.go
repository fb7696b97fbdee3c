package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ritual-cli/ritual/internal/models"
)

// JSONStore persists the owner document as a single flat JSON file holding
// exactly the serialized user record: user_id, name, habits.
type JSONStore struct {
	path  string
	user  *models.User
	alloc *models.IDAllocator
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path:  configPath,
		alloc: models.NewIDAllocator(),
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return nil
}

// Load reads the persisted document if one exists. A missing file is not an
// error; the user simply does not exist yet and User() reports ErrNoUser.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.user = nil
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return fmt.Errorf("%w: %v", models.ErrCorruptStore, err)
	}
	if user.Habits == nil {
		user.Habits = []*models.Habit{}
	}

	s.user = user
	s.alloc.Seed(user.MaxHabitID())
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) User() (*models.User, error) {
	if s.user == nil {
		return nil, models.ErrNoUser
	}
	return s.user, nil
}

func (s *JSONStore) SetUser(user *models.User) error {
	s.user = user
	s.alloc.Seed(user.MaxHabitID())
	return s.Save()
}

// Save serializes the complete document and replaces the file in one pass.
// The write goes through a temporary file and an atomic rename, so a crash
// leaves the prior version intact.
func (s *JSONStore) Save() error {
	if s.user == nil {
		return models.ErrNoUser
	}

	data, err := json.MarshalIndent(s.user, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

// DeleteAll removes the persisted document and clears the in-memory state.
func (s *JSONStore) DeleteAll() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete storage: %w", err)
	}
	s.user = nil
	s.alloc = models.NewIDAllocator()
	return nil
}

func (s *JSONStore) Allocator() *models.IDAllocator {
	return s.alloc
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple ritual processes against the same storage path at the
//     same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
