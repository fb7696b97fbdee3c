package storage

import (
	"database/sql"
	"fmt"
)

// Schema migrations for the SQLite store, applied in order and tracked via
// PRAGMA user_version. The slice index plus one is the schema version.
var migrations = []string{
	`CREATE TABLE users (
		user_id INTEGER PRIMARY KEY,
		name    TEXT NOT NULL
	);
	CREATE TABLE habits (
		habit_id       INTEGER PRIMARY KEY,
		name           TEXT NOT NULL,
		frequency      INTEGER NOT NULL,
		period         INTEGER NOT NULL,
		streak         INTEGER NOT NULL DEFAULT 0,
		longest_streak INTEGER NOT NULL DEFAULT 0,
		creation       TEXT NOT NULL,
		position       INTEGER NOT NULL
	);
	CREATE TABLE checkins (
		checkin_id TEXT PRIMARY KEY,
		habit_id   INTEGER NOT NULL REFERENCES habits(habit_id) ON DELETE CASCADE,
		ts         TEXT NOT NULL
	);
	CREATE INDEX idx_checkins_habit ON checkins(habit_id);`,
}

// applyMigrations brings the database schema up to the latest version.
func applyMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > len(migrations) {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", version, len(migrations))
	}

	for i := version; i < len(migrations); i++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", i+1, err)
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %d: %w", i+1, err)
		}
		// PRAGMA cannot be parameterized; the version is a trusted constant.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", i+1, err)
		}
	}

	return nil
}

// schemaVersion reports the database's current schema version.
func schemaVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// LatestSchemaVersion is the version this binary expects.
func LatestSchemaVersion() int {
	return len(migrations)
}
