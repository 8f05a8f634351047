package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/app"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/config"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/migrate"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/terminal"
)

// snapshotRows is the panel height printed by --once: one row of gauge
// between the borders.
const snapshotRows = 3

// snapshotTimeout bounds the single sample taken by --once.
const snapshotTimeout = 5 * time.Second

func runDashboard(cmd *cobra.Command, opts *rootOptions, reg *collectors.Registry) error {
	logger, closeLog, err := newLogger(opts.logFile, opts.verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	sampler, err := lookupSampler(reg, opts.metric)
	if err != nil {
		return err
	}
	store, _ := loadStore(opts.prefsPath, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	interactive := isTerminal(out)
	if opts.once || !interactive {
		profile := termenv.Ascii
		if interactive {
			profile = terminal.DetectColorProfile()
		}
		return runOnce(ctx, out, store, sampler, profile, logger)
	}

	zones := zone.New()
	defer zones.Close()

	logger.Info("starting dashboard", "metric", sampler.Name(), "prefs", store.Path())
	mopts := app.DefaultOptions()
	mopts.Logger = logger
	mopts.Context = ctx
	mopts.Zones = zones
	m := app.New(store, sampler, mopts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

// runOnce takes a single sample and prints the panel sized to the terminal
// width.
func runOnce(ctx context.Context, out io.Writer, store *config.Store, s collectors.Sampler, profile termenv.Profile, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	reading := collectors.Read(ctx, s)
	if reading.Err != nil {
		return fmt.Errorf("sampling %s: %w", s.Name(), reading.Err)
	}

	m := app.New(store, s, app.Options{Logger: logger, Profile: profile, Context: ctx})
	updated, _ := m.Update(app.SampleEvent{Reading: reading})
	frame := updated.(app.Model).Snapshot(terminal.GetSize().Cols, snapshotRows)
	_, err := fmt.Fprintln(out, frame)
	return err
}

// lookupSampler resolves a metric name against reg.
func lookupSampler(reg *collectors.Registry, name string) (collectors.Sampler, error) {
	metric, err := sysmetrics.ParseMetric(name)
	if err != nil {
		return nil, err
	}
	return reg.Lookup(string(metric))
}

// loadStore loads preferences from path, or the default location when path
// is empty. Load problems fall back to defaults and are only logged. The
// returned flag reports a legacy JSON file that should be migrated.
func loadStore(path string, logger *slog.Logger) (*config.Store, bool) {
	path = prefsPathOrDefault(path)
	store, outcome := config.Load(path)
	if !outcome.OK() {
		logger.Debug("using default preferences", "path", path, "error", outcome.Err)
	}

	legacy, err := migrate.NeedsMigration(path)
	if err != nil {
		logger.Debug("checking preference format", "path", path, "error", err)
		return store, false
	}
	if legacy {
		logger.Warn("legacy JSON preferences ignored, run `pulsegauge migrate` to import them", "path", path)
	}
	return store, legacy
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsInteractive(f)
}
