package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// backupTimeLayout is the timestamp embedded in backup names.
const backupTimeLayout = "20060102-150405"

// BackupInfo describes an existing backup file.
type BackupInfo struct {
	// Path is the absolute path to the backup file.
	Path string

	// Source is the name of the file that was backed up (e.g. prefs.toml).
	Source string

	// Timestamp is when the backup was created.
	Timestamp time.Time
}

// backupPattern matches backup filenames like prefs.toml.20060102-150405.bak
var backupPattern = regexp.MustCompile(`^(.+)\.(\d{8}-\d{6})\.bak$`)

// mgBackup creates a timestamped copy of path next to it, named
// prefs.toml.20060102-150405.bak, and returns the backup path.
func mgBackup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading preferences for backup: %w", err)
	}

	ts := time.Now().Format(backupTimeLayout)
	backupPath := filepath.Join(mgDir(path), fmt.Sprintf("%s.%s.bak", filepath.Base(path), ts))

	if err := mgWriteAtomic(backupPath, data); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return backupPath, nil
}

// ListBackups returns all backup files in dir, newest first.
func ListBackups(dir string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matches := backupPattern.FindStringSubmatch(entry.Name())
		if matches == nil {
			continue
		}

		ts, err := time.ParseInLocation(backupTimeLayout, matches[2], time.Local)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      filepath.Join(dir, entry.Name()),
			Source:    matches[1],
			Timestamp: ts,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// Restore copies a backup file back over path.
func Restore(backupPath, path string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}
	if err := mgWriteAtomic(path, data); err != nil {
		return fmt.Errorf("restoring backup: %w", err)
	}
	return nil
}

// mgWriteAtomic writes data to a temp file beside path and renames it into
// place.
func mgWriteAtomic(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(mgDir(path), ".pulsegauge-migrate-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// mgDir returns the directory portion of a path.
func mgDir(path string) string {
	d := filepath.Dir(path)
	if d == "" {
		return "."
	}
	return d
}
