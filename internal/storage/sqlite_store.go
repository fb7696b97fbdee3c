package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ritual-cli/ritual/internal/models"
)

// SQLiteStore persists the owner document in an SQLite database. It keeps
// the same full-document replacement model as the JSON store: Load pulls the
// whole record into memory and Save rewrites it inside one transaction.
type SQLiteStore struct {
	path  string
	db    *sql.DB
	user  *models.User
	alloc *models.IDAllocator
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path:  path,
		alloc: models.NewIDAllocator(),
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := applyMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			s.user = nil
			return nil
		}
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
		if err := applyMigrations(db); err != nil {
			return err
		}
	}

	user, err := s.loadUser()
	if err != nil {
		return err
	}

	s.user = user
	if user != nil {
		s.alloc.Seed(user.MaxHabitID())
	}
	return nil
}

func (s *SQLiteStore) loadUser() (*models.User, error) {
	user := &models.User{Habits: []*models.Habit{}}
	err := s.db.QueryRow("SELECT user_id, name FROM users LIMIT 1").Scan(&user.ID, &user.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCorruptStore, err)
	}

	rows, err := s.db.Query(`SELECT habit_id, name, frequency, period, streak, longest_streak, creation
		FROM habits ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		h := &models.Habit{History: []time.Time{}}
		var creation string
		if err := rows.Scan(&h.ID, &h.Name, &h.Periodicity.Frequency, &h.Periodicity.Period,
			&h.Streak, &h.LongestStreak, &creation); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrCorruptStore, err)
		}
		h.CreatedAt, err = time.Parse(time.RFC3339Nano, creation)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid creation timestamp %q", models.ErrCorruptStore, creation)
		}
		user.Habits = append(user.Habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}

	for _, h := range user.Habits {
		if err := s.loadHistory(h); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *SQLiteStore) loadHistory(h *models.Habit) error {
	rows, err := s.db.Query("SELECT ts FROM checkins WHERE habit_id = ? ORDER BY ts", h.ID)
	if err != nil {
		return fmt.Errorf("failed to query check-ins: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ts string
		if err := rows.Scan(&ts); err != nil {
			return fmt.Errorf("%w: %v", models.ErrCorruptStore, err)
		}
		at, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return fmt.Errorf("%w: invalid check-in timestamp %q", models.ErrCorruptStore, ts)
		}
		h.History = append(h.History, at)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Lexicographic text ordering is not reliable across fractional-second
	// precision, so re-establish the sorted invariant here.
	sort.Slice(h.History, func(i, j int) bool {
		return h.History[i].Before(h.History[j])
	})
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) User() (*models.User, error) {
	if s.user == nil {
		return nil, models.ErrNoUser
	}
	return s.user, nil
}

func (s *SQLiteStore) SetUser(user *models.User) error {
	s.user = user
	s.alloc.Seed(user.MaxHabitID())
	return s.Save()
}

// Save replaces the persisted document with the in-memory one inside a
// single transaction, so a crash leaves the prior version intact.
func (s *SQLiteStore) Save() error {
	if s.user == nil {
		return models.ErrNoUser
	}
	if s.db == nil {
		if err := s.Init(); err != nil {
			return err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM checkins", "DELETE FROM habits", "DELETE FROM users"} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to clear previous document: %w", err)
		}
	}

	if _, err := tx.Exec("INSERT INTO users (user_id, name) VALUES (?, ?)", s.user.ID, s.user.Name); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	for pos, h := range s.user.Habits {
		_, err := tx.Exec(`INSERT INTO habits
			(habit_id, name, frequency, period, streak, longest_streak, creation, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Periodicity.Frequency, h.Periodicity.Period,
			h.Streak, h.LongestStreak, h.CreatedAt.Format(time.RFC3339Nano), pos)
		if err != nil {
			return fmt.Errorf("failed to save habit %d: %w", h.ID, err)
		}
		for _, ts := range h.History {
			_, err := tx.Exec("INSERT INTO checkins (checkin_id, habit_id, ts) VALUES (?, ?, ?)",
				uuid.New().String(), h.ID, ts.Format(time.RFC3339Nano))
			if err != nil {
				return fmt.Errorf("failed to save check-in for habit %d: %w", h.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

// DeleteAll removes the database file and clears the in-memory state.
func (s *SQLiteStore) DeleteAll() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		s.db = nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete database: %w", err)
	}
	s.user = nil
	s.alloc = models.NewIDAllocator()
	return nil
}

func (s *SQLiteStore) Allocator() *models.IDAllocator {
	return s.alloc
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

// SchemaVersion reports the database's current schema version.
func (s *SQLiteStore) SchemaVersion() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database connection is nil")
	}
	return schemaVersion(s.db)
}

// GetConfigPath returns the path to the underlying database file. The same
// single-writer caveats as JSONStore.GetConfigPath apply.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
