package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors"
)

// runCLI executes the command tree with a mock cpu sampler and returns
// stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	reg := collectors.NewRegistry()
	if err := reg.Register(collectors.NewMockSampler("cpu", 0.4)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(collectors.NewMockSampler("memory", 0.9)); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCmd(reg)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionShort(t *testing.T) {
	out, err := runCLI(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "dev\n" {
		t.Errorf("version --short = %q, want %q", out, "dev\n")
	}
}

func TestVersionFull(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	for _, want := range []string{"pulsegauge dev", "commit: none", "built: unknown"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatVersion(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"dev", "dev"},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
	}
	for _, tt := range tests {
		if got := formatVersion(tt.in); got != tt.want {
			t.Errorf("formatVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMetricsListsRegistry(t *testing.T) {
	out, err := runCLI(t, "metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if out != "cpu\nmemory\n" {
		t.Errorf("metrics = %q, want sorted names", out)
	}
}

func TestUnknownMetricFails(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.toml")
	if _, err := runCLI(t, "--once", "--prefs", prefs, "--metric", "gpu"); err == nil {
		t.Error("expected an error for an unknown metric")
	}
}

func TestKnownButUnregisteredMetricFails(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.toml")
	_, err := runCLI(t, "--once", "--prefs", prefs, "--metric", "disk")
	if err == nil || !strings.Contains(err.Error(), "available") {
		t.Errorf("error = %v, want one naming the available metrics", err)
	}
}

func TestOncePrintsPanel(t *testing.T) {
	t.Setenv("COLUMNS", "40")
	prefs := filepath.Join(t.TempDir(), "prefs.toml")
	out, err := runCLI(t, "--once", "--prefs", prefs, "--metric", "MEMORY")
	if err != nil {
		t.Fatalf("--once: %v", err)
	}
	if strings.Count(out, "\n") != snapshotRows {
		t.Errorf("output has %d lines, want %d:\n%s", strings.Count(out, "\n"), snapshotRows, out)
	}
	if !strings.Contains(out, "memory 90%") {
		t.Errorf("output missing title:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal output should be plain:\n%q", out)
	}
	if _, err := os.Stat(prefs); !os.IsNotExist(err) {
		t.Error("--once should not write the preference file")
	}
}

func TestPrefsShowsDefaults(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.toml")
	out, err := runCLI(t, "prefs", "--prefs", prefs)
	if err != nil {
		t.Fatalf("prefs: %v", err)
	}
	for _, want := range []string{"# " + prefs, `view_type = "sparkline"`, `theme = "default"`, `color = "green"`, "interval = 1000"} {
		if !strings.Contains(out, want) {
			t.Errorf("prefs output missing %q:\n%s", want, out)
		}
	}
}

func TestPrefsReadsFile(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.toml")
	doc := "view_type = \"gauge\"\ntheme = \"tokyo-night\"\ncolor = \"reset\"\ninterval = 2500\n"
	if err := os.WriteFile(prefs, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "prefs", "--prefs", prefs)
	if err != nil {
		t.Fatalf("prefs: %v", err)
	}
	for _, want := range []string{`view_type = "gauge"`, `theme = "tokyo-night"`, "interval = 2500"} {
		if !strings.Contains(out, want) {
			t.Errorf("prefs output missing %q:\n%s", want, out)
		}
	}
}

func TestLogFileRespectsVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pulsegauge.log")
	logger, closeLog, err := newLogger(path, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "k", "v")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "level=DEBUG") || !strings.Contains(string(data), "msg=hello") {
		t.Errorf("log file = %q, want a debug entry", data)
	}
}

func TestLogDiscardedWithoutFile(t *testing.T) {
	logger, closeLog, err := newLogger("", true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}

func TestMigrateAndRestore(t *testing.T) {
	dir := t.TempDir()
	prefs := filepath.Join(dir, "prefs.toml")
	if err := os.WriteFile(prefs, []byte("interval = 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	legacy := filepath.Join(dir, "legacy.json")
	if err := os.WriteFile(legacy, []byte(`{"view_type": "Gauge", "interval": 3000}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "migrate", "--prefs", prefs, legacy)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, want := range []string{"view_type: Gauge -> gauge", "backup: ", "wrote " + prefs} {
		if !strings.Contains(out, want) {
			t.Errorf("migrate output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "prefs", "--prefs", prefs)
	if err != nil {
		t.Fatalf("prefs: %v", err)
	}
	if !strings.Contains(out, "interval = 3000") {
		t.Errorf("migrated prefs:\n%s", out)
	}

	if _, err := runCLI(t, "restore", "--prefs", prefs); err != nil {
		t.Fatalf("restore: %v", err)
	}
	data, _ := os.ReadFile(prefs)
	if string(data) != "interval = 500\n" {
		t.Errorf("restored prefs = %q", data)
	}
}

func TestMigrateDryRun(t *testing.T) {
	dir := t.TempDir()
	prefs := filepath.Join(dir, "prefs.toml")
	legacy := filepath.Join(dir, "legacy.json")
	if err := os.WriteFile(legacy, []byte(`{"theme": "TokyoNight"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "migrate", "--dry-run", "--prefs", prefs, legacy)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !strings.Contains(out, "dry run") {
		t.Errorf("output = %q, want dry run notice", out)
	}
	if _, err := os.Stat(prefs); !os.IsNotExist(err) {
		t.Error("dry run wrote the preference file")
	}
}

func TestRestoreWithoutBackups(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.toml")
	if _, err := runCLI(t, "restore", "--prefs", prefs); err == nil {
		t.Error("expected an error when no backups exist")
	}
}

func TestPrefsReportsLegacyFile(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(prefs, []byte(`{"view_type": "Gauge", "interval": 2000}`), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "prefs", "--prefs", prefs)
	if err != nil {
		t.Fatalf("prefs: %v", err)
	}
	if !strings.Contains(out, "pulsegauge migrate --prefs "+prefs+" "+prefs) {
		t.Errorf("prefs output missing migrate hint:\n%s", out)
	}
	if !strings.Contains(out, `view_type = "sparkline"`) {
		t.Errorf("legacy file should not be applied:\n%s", out)
	}
}

func TestPrefsWithoutLegacyFileHasNoHint(t *testing.T) {
	out, err := runCLI(t, "prefs", "--prefs", filepath.Join(t.TempDir(), "prefs.toml"))
	if err != nil {
		t.Fatalf("prefs: %v", err)
	}
	if strings.Contains(out, "legacy") {
		t.Errorf("unexpected migrate hint:\n%s", out)
	}
}

func TestOnceLogsLegacyFile(t *testing.T) {
	t.Setenv("COLUMNS", "40")
	dir := t.TempDir()
	prefs := filepath.Join(dir, "prefs.json")
	logFile := filepath.Join(dir, "pulsegauge.log")
	if err := os.WriteFile(prefs, []byte(`{"theme": "TokyoNight"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "--once", "--prefs", prefs, "--log-file", logFile); err != nil {
		t.Fatalf("--once: %v", err)
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "level=WARN") || !strings.Contains(string(data), "legacy JSON preferences") {
		t.Errorf("log = %q, want a legacy preferences warning", data)
	}
}
