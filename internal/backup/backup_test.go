package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ritual-cli/ritual/internal/models"
)

func writeStorageFixture(t *testing.T, dir string) string {
	t.Helper()

	user := models.NewUser("Test User")
	user.AddHabit(&models.Habit{
		ID:          0,
		Name:        "Brush Teeth",
		Periodicity: models.Periodicity{Frequency: 1, Period: 1},
		History:     []time.Time{time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)},
		CreatedAt:   time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	})

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}

	path := filepath.Join(dir, "ritual.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStorageFixture(t, dir)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written outside backup dir: %s", backupPath)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup did not keep the storage extension: %s", backupPath)
	}

	original, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("read original: %v", err)
	}
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(original) != string(copied) {
		t.Error("backup content differs from storage file")
	}
}

func TestCreateBackup_NoStorageFile(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "ritual.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error backing up a missing storage file")
	}
}

func TestListBackups_SortedNewestFirst(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStorageFixture(t, dir)
	mgr := NewManager(storePath)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	for _, name := range []string{
		"ritual-20250601-0800.json",
		"ritual-20250603-0800.json",
		"ritual-20250602-0800.json",
		"unrelated.txt",
	} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups not sorted newest first")
		}
	}
}

func TestRotation_KeepsNewestMaxBackups(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStorageFixture(t, dir)
	mgr := NewManager(storePath)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < MaxBackups+3; i++ {
		name := BackupFilePrefix + base.AddDate(0, 0, i).Format("20060102-1504") + ".json"
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	// A fresh backup triggers rotation.
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStorageFixture(t, dir)
	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Overwrite the live file, then restore.
	changed := models.NewUser("Someone Else")
	data, _ := json.Marshal(changed)
	if err := os.WriteFile(storePath, data, 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("read restored: %v", err)
	}
	var user models.User
	if err := json.Unmarshal(restored, &user); err != nil {
		t.Fatalf("restored file not valid: %v", err)
	}
	if user.Name != "Test User" {
		t.Errorf("expected restored user %q, got %q", "Test User", user.Name)
	}
}

func TestRestoreBackup_RejectsCorruptBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStorageFixture(t, dir)
	mgr := NewManager(storePath)

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := mgr.RestoreBackup(bad); err == nil {
		t.Error("expected restore of a corrupt backup to fail")
	}
}
