package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/ritual-cli/ritual/internal/backup"
	"github.com/ritual-cli/ritual/internal/models"
	"github.com/ritual-cli/ritual/internal/storage"
	"github.com/ritual-cli/ritual/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: document integrity (only if storage is reachable)
	if storeReachable {
		if err := checkDocumentIntegrity(ctx); err != nil {
			fmt.Printf("❌ Document integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Document integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Document integrity: SKIPPED (storage not reachable)\n")
	}

	// Check 3: schema version valid (SQLite only)
	if storeReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: no other ritual process is writing the same storage
	if err := checkSingleProcess(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDocumentIntegrity(ctx *Context) error {
	user, err := ctx.Store.User()
	if err != nil {
		if errors.Is(err, models.ErrNoUser) {
			// Nothing persisted yet is a valid state.
			return nil
		}
		return err
	}

	result := validation.New().ValidateUser(user)
	if result.HasConflicts() {
		return fmt.Errorf("%s", strings.TrimSpace(result.FormatReport()))
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON store doesn't have a schema version
		return nil
	}
	if sqliteStore.GetDB() == nil {
		// Nothing persisted yet
		return nil
	}

	current, err := sqliteStore.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	latest := storage.LatestSchemaVersion()
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("database schema version (%d) is behind supported version (%d)", current, latest)
	}

	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'ritual backup create'")
	}

	return nil
}

// checkSingleProcess warns when another ritual process is running. The
// storage layer assumes a single exclusive writer.
func checkSingleProcess() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), filepath.Ext(p.Executable()))
		if name == "ritual" {
			return fmt.Errorf("another ritual process is running (pid %d); concurrent writers can corrupt storage", p.Pid())
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// This might be intentional, so just note it
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
