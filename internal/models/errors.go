package models

import "errors"

// Error kinds surfaced to the CLI boundary. All are recoverable: the caller
// reports the condition and aborts the current operation only.
var (
	ErrInvalidPeriodicity = errors.New("periodicity frequency and period must be positive integers")
	ErrHabitNotFound      = errors.New("habit not found")
	ErrNoUser             = errors.New("no user found")
	ErrCorruptStore       = errors.New("persisted data is corrupted")
)
