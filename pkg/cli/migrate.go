package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/pulsegauge/pkg/config"
	"gitlab.com/tinyland/lab/pulsegauge/pkg/migrate"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "migrate <legacy.json>",
		Short: "Import a legacy JSON preference file",
		Long: `Import preferences from a JSON document with view_type, theme, color
and interval keys into the TOML preference file. An existing TOML file
is backed up next to itself first.

Examples:
  pulsegauge migrate ~/old-prefs.json
  pulsegauge migrate --dry-run ~/old-prefs.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := prefsPathOrDefault(opts.prefsPath)
			if target == "" {
				return fmt.Errorf("no preference path: set --prefs or $HOME")
			}

			result, err := migrate.Migrate(args[0], target, migrate.Options{DryRun: dryRun})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range result.Changes {
				fmt.Fprintf(out, "%-9s %s: %s -> %s\n", c.Action, c.Field, c.OldValue, c.NewValue)
			}
			for _, w := range result.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			if result.BackupPath != "" {
				fmt.Fprintf(out, "backup: %s\n", result.BackupPath)
			}
			if dryRun {
				fmt.Fprintf(out, "dry run: %s not written\n", target)
				return nil
			}
			fmt.Fprintf(out, "wrote %s\n", target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the result without writing")
	return cmd
}

func newRestoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [backup]",
		Short: "Restore the preference file from a backup",
		Long: `Restore the preference file from a backup taken by migrate. Without
an argument the newest backup next to the preference file is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := prefsPathOrDefault(opts.prefsPath)
			if target == "" {
				return fmt.Errorf("no preference path: set --prefs or $HOME")
			}

			var backup string
			if len(args) == 1 {
				backup = args[0]
			} else {
				backups, err := migrate.ListBackups(filepath.Dir(target))
				if err != nil {
					return err
				}
				for _, b := range backups {
					if b.Source == filepath.Base(target) {
						backup = b.Path
						break
					}
				}
				if backup == "" {
					return fmt.Errorf("no backups of %s found", target)
				}
			}

			if err := migrate.Restore(backup, target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %s from %s\n", target, backup)
			return nil
		},
	}
}

// prefsPathOrDefault returns path, or the per-user default when empty.
func prefsPathOrDefault(path string) string {
	if path == "" {
		return config.DefaultPath()
	}
	return path
}
