package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ritual-cli/ritual/internal/models"
)

const (
	// MaxBackups is the maximum number of backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = "ritual-"
)

// Info contains information about a backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backups of the storage file, whichever flavor it is:
// a .json document or a .db SQLite database.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
}

// NewManager creates a backup manager for the given storage path. Backups
// live in a "backups" directory next to the storage file and keep its
// extension so a restore target is unambiguous.
func NewManager(storePath string) *Manager {
	configDir := filepath.Dir(storePath)
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(configDir, BackupDirName),
		suffix:    filepath.Ext(storePath),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// CreateBackup creates a new backup of the storage file
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup creates a new backup; skipRotation prevents recursive backup
// creation during restore.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage file does not exist: %s", m.storePath)
	}

	// Generate backup filename with timestamp; add seconds, then a counter,
	// if the minute-precision name is taken.
	timestamp := time.Now().Format("20060102-1504")
	backupName := fmt.Sprintf("%s%s%s", BackupFilePrefix, timestamp, m.suffix)
	backupPath := filepath.Join(m.backupDir, backupName)

	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupName = fmt.Sprintf("%s%s%s", BackupFilePrefix, timestamp, m.suffix)
		backupPath = filepath.Join(m.backupDir, backupName)

		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			backupName = fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, m.suffix)
			backupPath = filepath.Join(m.backupDir, backupName)
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := m.copyStorage(backupPath); err != nil {
		return "", fmt.Errorf("failed to back up storage: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// copyStorage writes a copy of the storage file to destPath. SQLite
// databases go through VACUUM INTO for a consistent snapshot; JSON documents
// are plain file copies (each save already replaces them atomically).
func (m *Manager) copyStorage(destPath string) error {
	if m.suffix != ".json" {
		srcDB, err := sql.Open("sqlite", m.storePath+"?mode=ro")
		if err != nil {
			return fmt.Errorf("failed to open source database: %w", err)
		}
		defer srcDB.Close()

		var count int
		if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
			return fmt.Errorf("source database appears to be corrupted: %w", err)
		}

		if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err == nil {
			return nil
		}
		// VACUUM INTO needs SQLite >= 3.27; fall through to a file copy.
	}

	return copyFile(m.storePath, destPath)
}

// ListBackups returns all available backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, m.suffix)
		timestampStr = trimCounterSuffix(timestampStr)

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// trimCounterSuffix strips an optional trailing "-N" collision counter from
// a backup timestamp (N is all digits and not a 4- or 6-digit time part).
func trimCounterSuffix(timestampStr string) string {
	parts := strings.Split(timestampStr, "-")
	if len(parts) <= 2 {
		return timestampStr
	}
	last := parts[len(parts)-1]
	if len(last) == 4 || len(last) == 6 {
		return timestampStr
	}
	for _, c := range last {
		if c < '0' || c > '9' {
			return timestampStr
		}
	}
	return strings.Join(parts[:len(parts)-1], "-")
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= MaxBackups {
		return nil
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup replaces the storage file with a backup. The current file is
// backed up first, and the swap happens via temp file + atomic rename.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verifyBackup(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		// skipRotation prevents the safety backup from rotating away older ones.
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to back up current storage before restore: %w", err)
		}
		fmt.Printf("Created backup of current storage: %s\n", filepath.Base(currentBackup))
	}

	tempPath := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore storage: %w", err)
	}

	return nil
}

// verifyBackup checks that a backup file is a readable document of the
// expected flavor before it is allowed to replace live data.
func (m *Manager) verifyBackup(path string) error {
	if m.suffix == ".json" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var user models.User
		return json.Unmarshal(data, &user)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	// Sync to ensure data is written to disk
	return destFile.Sync()
}
