package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ritual-cli/ritual/internal/analytics"
	"github.com/ritual-cli/ritual/internal/backup"
	"github.com/ritual-cli/ritual/internal/constants"
	"github.com/ritual-cli/ritual/internal/models"
	"github.com/ritual-cli/ritual/internal/storage"
	"github.com/ritual-cli/ritual/internal/streak"
)

type Context struct {
	Store  storage.Provider
	Engine *streak.Engine
	Report *analytics.Reporter
}

// PerformAutomaticBackup creates a backup of the storage file, reporting
// failures as warnings rather than aborting the caller's operation.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// loadUser loads the store and returns the owner record, translating the
// missing-user case into an actionable message.
func loadUser(ctx *Context) (*models.User, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}
	user, err := ctx.Store.User()
	if err != nil {
		return nil, fmt.Errorf("%w, run 'ritual user create' first", err)
	}
	return user, nil
}

// parsePeriodicity accepts "daily", "weekly", or "FxP" (e.g. "3x7" for
// three times every seven days).
func parsePeriodicity(s string) (models.Periodicity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return models.Periodicity{Frequency: 1, Period: 1}, nil
	case "weekly":
		return models.Periodicity{Frequency: 1, Period: 7}, nil
	}

	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return models.Periodicity{}, fmt.Errorf("invalid periodicity %q: expected daily, weekly, or FxP (e.g. 3x7)", s)
	}
	freq, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return models.Periodicity{}, fmt.Errorf("invalid frequency in %q: %w", s, err)
	}
	period, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return models.Periodicity{}, fmt.Errorf("invalid period in %q: %w", s, err)
	}

	p := models.Periodicity{Frequency: freq, Period: period}
	if err := p.Validate(); err != nil {
		return models.Periodicity{}, err
	}
	return p, nil
}

func formatPeriodicity(p models.Periodicity) string {
	switch p {
	case models.Periodicity{Frequency: 1, Period: 1}:
		return "daily"
	case models.Periodicity{Frequency: 1, Period: 7}:
		return "weekly"
	default:
		return fmt.Sprintf("%dx%d", p.Frequency, p.Period)
	}
}

// parseTimestamp accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(constants.DateFormat, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: expected RFC 3339 or YYYY-MM-DD", s)
}
