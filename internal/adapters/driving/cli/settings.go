package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in ~/.safedrive/config.toml.

Keys:
  storage.backend  json, sqlite or memory
  storage.path     data file location
  export.dir       base directory for relative export paths
  log.verbose      true to print debug logs`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	ValidArgs: []string{
		domain.SettingStorageBackend,
		domain.SettingStoragePath,
		domain.SettingExportDir,
		domain.SettingLogVerbose,
	},
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Storage]")
	fmt.Fprintf(out, "  Backend: %s%s\n", settings.Backend.Description(), overridden(opts.Backend, "--backend"))
	if settings.Backend.Persistent() {
		fmt.Fprintf(out, "  Path: %s%s\n", settings.RecordPath(), overridden(opts.DataPath, "--data"))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Export]")
	exportDir := settings.ExportDir
	if exportDir == "" {
		exportDir = "(working directory)"
	}
	fmt.Fprintf(out, "  Directory: %s\n", exportDir)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Log]")
	fmt.Fprintf(out, "  Verbose: %t\n", settings.Verbose)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

// overridden marks a value that came from a global flag.
func overridden(flagValue, flag string) string {
	if flagValue == "" {
		return ""
	}
	return " (" + flag + ")"
}
