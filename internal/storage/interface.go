package storage

import "github.com/ritual-cli/ritual/internal/models"

// Provider is the persistence boundary for one owner record. Every save
// replaces the complete persisted document in a single pass; there are no
// partial writes.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Owner record
	User() (*models.User, error)
	SetUser(*models.User) error
	Save() error
	DeleteAll() error

	// Allocator returns the habit ID allocator, re-seeded from the loaded
	// document's highest habit ID.
	Allocator() *models.IDAllocator

	// Utils
	GetConfigPath() string
}
