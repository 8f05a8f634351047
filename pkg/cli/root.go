// Package cli implements the pulsegauge command line on top of cobra.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors/sysmetrics"
)

// rootOptions holds the persistent and root-only flags.
type rootOptions struct {
	prefsPath string
	metric    string
	diskPath  string
	logFile   string
	verbose   bool
	once      bool
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with the host metric samplers.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

// newRootCmd builds the command tree. A nil registry is populated with the
// sysmetrics samplers once flags are parsed.
func newRootCmd(reg *collectors.Registry) *cobra.Command {
	opts := &rootOptions{}

	registry := func() (*collectors.Registry, error) {
		if reg != nil {
			return reg, nil
		}
		r := collectors.NewRegistry()
		if err := sysmetrics.Register(r, sysmetrics.Config{DiskPath: opts.diskPath}); err != nil {
			return nil, err
		}
		return r, nil
	}

	cmd := &cobra.Command{
		Use:   "pulsegauge",
		Short: "Live gradient gauge for a host metric",
		Long: `Show a single host metric as a live gradient gauge or sparkline.

Keys: c/t cycle colour and theme, v toggle gauge/sparkline,
+/- change the sampling interval, ? help, q quit.
Changes are saved to the preference file immediately.

Examples:
  pulsegauge
  pulsegauge --metric memory
  pulsegauge --once --metric disk --disk-path /home`,
		Version:      formatVersion(version),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := registry()
			if err != nil {
				return err
			}
			return runDashboard(cmd, opts, r)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.prefsPath, "prefs", "", "preference file (default $XDG_CONFIG_HOME/pulsegauge/prefs.toml)")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file (the dashboard owns the terminal)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	f := cmd.Flags()
	f.StringVarP(&opts.metric, "metric", "m", string(sysmetrics.MetricCPU), "metric to display (cpu|memory|swap|disk|load)")
	f.StringVar(&opts.diskPath, "disk-path", "/", "mount point for the disk metric")
	f.BoolVar(&opts.once, "once", false, "print one frame and exit (implied when stdout is not a terminal)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMetricsCmd(registry))
	cmd.AddCommand(newPrefsCmd(opts))
	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newRestoreCmd(opts))
	return cmd
}

// newLogger returns a text logger writing to path, or a discarding logger
// when path is empty. The returned close func is always non-nil.
func newLogger(path string, verbose bool) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}
