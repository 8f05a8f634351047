package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/theme"
)

// appName is the directory under the user config home.
const appName = "pulsegauge"

// prefsFile is the preference document name inside the app directory.
const prefsFile = "prefs.toml"

// Outcome is the result of a best-effort persistence step. Preference I/O
// never fails its caller: Err is informational and may be logged or
// dropped.
type Outcome struct {
	Path string
	Err  error
}

// OK reports whether the step completed without error.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Store owns the preference record and the file it is persisted to. It is
// not safe for concurrent use; the UI goroutine is its only mutator.
type Store struct {
	path  string
	prefs Preferences
}

// DefaultPath returns the per-user preference path:
//  1. $XDG_CONFIG_HOME/pulsegauge/prefs.toml
//  2. ~/.config/pulsegauge/prefs.toml
//
// It returns "" when no home directory can be resolved.
func DefaultPath() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName, prefsFile)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", appName, prefsFile)
}

// NewStore returns a store for path holding prefs, without touching disk.
func NewStore(path string, prefs Preferences) *Store {
	return &Store{path: path, prefs: prefs}
}

// Load reads the preference file at path. A missing, unreadable or
// malformed file yields DefaultPreferences; the Outcome carries the reason.
// An empty path also yields the defaults.
func Load(path string) (*Store, Outcome) {
	s := NewStore(path, DefaultPreferences())
	if path == "" {
		return s, Outcome{Err: errors.New("config: no preference path")}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, Outcome{Path: path}
		}
		return s, Outcome{Path: path, Err: err}
	}
	defer f.Close()

	prefs, err := LoadFromReader(f)
	if err != nil {
		return s, Outcome{Path: path, Err: err}
	}
	s.prefs = prefs
	return s, Outcome{Path: path}
}

// LoadFromReader decodes a preference document. Fields absent from the
// document keep their default values and unknown keys are ignored.
func LoadFromReader(r io.Reader) (Preferences, error) {
	prefs := DefaultPreferences()
	if _, err := toml.NewDecoder(r).Decode(&prefs); err != nil {
		return DefaultPreferences(), fmt.Errorf("config: parse preferences: %w", err)
	}
	prefs.Interval = NormalizeInterval(prefs.Interval)
	return prefs, nil
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Preferences returns a copy of the current record.
func (s *Store) Preferences() Preferences {
	return s.prefs
}

// ViewType returns the current view type.
func (s *Store) ViewType() ViewType {
	return s.prefs.ViewType
}

// Interval returns the sampling interval as a duration.
func (s *Store) Interval() time.Duration {
	return s.prefs.IntervalDuration()
}

// Palette derives the colour palette from the current theme and accent.
func (s *Store) Palette() theme.Palette {
	return s.prefs.Palette()
}

// NextTheme advances the joint theme/colour ring and saves.
func (s *Store) NextTheme() Outcome {
	s.prefs.nextTheme()
	return s.Save()
}

// NextViewType toggles between sparkline and gauge and saves.
func (s *Store) NextViewType() Outcome {
	s.prefs.nextViewType()
	return s.Save()
}

// IncInterval lengthens the sampling interval by one step and saves.
func (s *Store) IncInterval() Outcome {
	s.prefs.incInterval()
	return s.Save()
}

// DecInterval shortens the sampling interval by one step and saves.
func (s *Store) DecInterval() Outcome {
	s.prefs.decInterval()
	return s.Save()
}

// Save writes the record to the store path atomically, creating parent
// directories. Failures are reported in the Outcome only.
func (s *Store) Save() Outcome {
	if s.path == "" {
		return Outcome{Err: errors.New("config: no preference path")}
	}
	return Outcome{Path: s.path, Err: writePrefs(s.path, s.prefs)}
}

// writePrefs encodes prefs to a temp file next to path and renames it into
// place.
func writePrefs(path string, prefs Preferences) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".pulsegauge-prefs-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := toml.NewEncoder(tmpFile).Encode(prefs); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encoding preferences: %w", err)
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
