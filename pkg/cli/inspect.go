package cli

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/collectors"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/config"
)

func newMetricsCmd(registry func() (*collectors.Registry, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the metrics that can be displayed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry()
			if err != nil {
				return err
			}
			for _, name := range reg.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newPrefsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prefs",
		Short: "Print the preference file path and its effective values",
		Long: `Print the resolved preference file path followed by the effective
preferences as TOML. Missing or malformed files show the defaults; a
legacy JSON file is reported with the command that imports it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := newLogger(opts.logFile, opts.verbose)
			if err != nil {
				return err
			}
			defer closeLog()

			store, legacy := loadStore(opts.prefsPath, logger)
			return writePrefs(cmd.OutOrStdout(), store.Path(), store.Preferences(), legacy)
		},
	}
}

// writePrefs prints the path as a comment followed by prefs as TOML. A
// legacy file gets a second comment naming the import command.
func writePrefs(w io.Writer, path string, prefs config.Preferences, legacy bool) error {
	if path == "" {
		path = "(none)"
	}
	if _, err := fmt.Fprintf(w, "# %s\n", path); err != nil {
		return err
	}
	if legacy {
		if _, err := fmt.Fprintf(w, "# legacy JSON file, import it with: pulsegauge migrate --prefs %s %s\n", path, path); err != nil {
			return err
		}
	}
	if err := toml.NewEncoder(w).Encode(prefs); err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	return nil
}
