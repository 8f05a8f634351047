// Package migrate imports preferences from the legacy JSON document format
// into the TOML preference file.
//
// The pipeline is: detect format -> backup existing TOML -> parse JSON ->
// transform -> write TOML. Backups are taken before any change, and all
// writes are atomic (temp file + rename).
package migrate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/config"
)

// Format identifies a preference document encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Result holds the outcome of an import.
type Result struct {
	// Success indicates whether the import completed without errors.
	Success bool

	// Warnings contains non-fatal issues, such as values that were replaced
	// with defaults.
	Warnings []string

	// BackupPath is the backup of the TOML file that was overwritten, if any.
	BackupPath string

	// Changes lists every field that differs from the defaults.
	Changes []Change

	// Preferences is the imported record.
	Preferences config.Preferences
}

// Change describes a single field carried over from the legacy document.
type Change struct {
	// Field is the TOML key (e.g. "view_type").
	Field string

	// OldValue is the raw legacy value.
	OldValue string

	// NewValue is the value written to TOML.
	NewValue string

	// Action is one of "changed", "adjusted" or "defaulted".
	Action string
}

// Options tune Migrate.
type Options struct {
	// DryRun parses and transforms without touching prefsPath.
	DryRun bool
}

// Migrate imports the JSON document at legacyPath into the TOML file at
// prefsPath. An existing prefsPath is backed up first.
func Migrate(legacyPath, prefsPath string, opts Options) (*Result, error) {
	result := &Result{}

	format, err := DetectFormat(legacyPath)
	if err != nil {
		return nil, fmt.Errorf("format detection failed: %w", err)
	}
	if format != FormatJSON {
		return nil, fmt.Errorf("%s is %s, not a legacy JSON document", legacyPath, format)
	}

	legacy, err := mgParseLegacy(legacyPath)
	if err != nil {
		return nil, fmt.Errorf("legacy parsing failed: %w", err)
	}

	prefs, changes, warnings := mgTransform(legacy)
	result.Preferences = prefs
	result.Changes = changes
	result.Warnings = warnings

	if opts.DryRun {
		result.Success = true
		return result, nil
	}

	if _, err := os.Stat(prefsPath); err == nil {
		backupPath, err := mgBackup(prefsPath)
		if err != nil {
			return nil, fmt.Errorf("backup failed: %w", err)
		}
		result.BackupPath = backupPath
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking preference file: %w", err)
	}

	if o := config.NewStore(prefsPath, prefs).Save(); !o.OK() {
		return nil, fmt.Errorf("writing preferences failed: %w", o.Err)
	}

	result.Success = true
	return result, nil
}

// DetectFormat reports whether the document at path is JSON or TOML.
func DetectFormat(path string) (Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("reading preferences: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatUnknown, fmt.Errorf("preference file is empty")
	}

	if trimmed[0] == '{' && json.Valid(trimmed) {
		return FormatJSON, nil
	}

	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err == nil {
		return FormatTOML, nil
	}

	return FormatUnknown, fmt.Errorf("unable to determine preference format")
}

// NeedsMigration reports whether path holds a legacy JSON document.
// A missing file needs no migration.
func NeedsMigration(path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	format, err := DetectFormat(path)
	if err != nil {
		return false, err
	}
	return format == FormatJSON, nil
}
