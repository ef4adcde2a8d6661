// Package cli implements the safedrive command line on top of cobra.
//
// Commands are package-level values registered with rootCmd in init.
// Services are resolved once per run by the root command's pre-run hook
// through a Connector supplied by main.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
	"github.com/custodia-labs/safedrive/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Command annotations controlling service setup.
const (
	annotationRecords    = "safedrive/records"
	annotationStandalone = "safedrive/standalone"
)

// Options holds the values of the global flags.
type Options struct {
	ConfigDir string
	DataPath  string
	Backend   string
	Verbose   bool
}

// Services bundles the record-backed services of one run.
type Services struct {
	Records driving.RecordService
	Reports driving.ReportService
	Watcher driven.ChangeWatcher

	// Close releases the record backend. May be nil.
	Close func() error
}

// Connector builds services for a command run.
type Connector interface {
	// Settings opens the settings service for the given configuration directory.
	Settings(configDir string) (driving.SettingsService, error)

	// Connect opens the record backend selected by settings.
	// Records are not loaded yet.
	Connect(ctx context.Context, settings domain.AppSettings) (*Services, error)
}

var (
	opts      Options
	connector Connector

	settingsService driving.SettingsService
	appSettings     *domain.AppSettings
	recordService   driving.RecordService
	reportService   driving.ReportService
	changeWatcher   driven.ChangeWatcher
	closeServices   func() error
)

var rootCmd = &cobra.Command{
	Use:   "safedrive",
	Short: "Log vehicle trips, vehicles and drivers",
	Long: `SafeDrive keeps a log of vehicle trips together with the registered
vehicles and drivers. Every change is saved immediately to the data file
(safedrive_data.json by default).

Trips can be exported to CSV, all records to JSON, and a printable report
to PDF. The summary totals all distances that are plain numbers.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return teardown()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.safedrive)")
	flags.StringVar(&opts.DataPath, "data", "", "record file location (overrides storage.path)")
	flags.StringVar(&opts.Backend, "backend", "", "storage backend: json, sqlite or memory")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print debug logs to stderr")

	// Post-run hooks are skipped when setup or RunE fails.
	cobra.OnFinalize(closeAfterFailure)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetConnector sets how commands obtain their services.
func SetConnector(c Connector) {
	connector = c
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup resolves settings for every command and connects the record
// backend for commands annotated as needing records.
func setup(cmd *cobra.Command, _ []string) error {
	if opts.Verbose {
		logger.SetVerbose(true)
	}
	if connector == nil || cmd.Annotations[annotationStandalone] != "" {
		return nil
	}

	svc, err := connector.Settings(opts.ConfigDir)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	settingsService = svc

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if err := applyOverrides(settings, opts); err != nil {
		return err
	}
	appSettings = settings
	if settings.Verbose {
		logger.SetVerbose(true)
	}
	logger.Debug("backend %s, records at %s", settings.Backend, settings.RecordPath())

	if cmd.Annotations[annotationRecords] == "" {
		return nil
	}

	services, err := connector.Connect(cmd.Context(), *settings)
	if err != nil {
		return fmt.Errorf("opening records: %w", err)
	}
	recordService = services.Records
	reportService = services.Reports
	changeWatcher = services.Watcher
	closeServices = services.Close

	return recordService.Open(cmd.Context())
}

// applyOverrides lets the global flags take precedence over the config file.
func applyOverrides(settings *domain.AppSettings, o Options) error {
	if o.Backend != "" {
		backend := domain.StorageBackend(o.Backend)
		if !backend.IsValid() {
			return fmt.Errorf("--backend %q: %w", o.Backend, domain.ErrUnsupportedBackend)
		}
		settings.Backend = backend
	}
	if o.DataPath != "" {
		settings.DataPath = o.DataPath
	}
	return nil
}

func teardown() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

func closeAfterFailure() {
	if err := teardown(); err != nil {
		logger.Warn("closing records: %v", err)
	}
}

// currentSettings returns the resolved settings, falling back to defaults
// with the global flag overrides applied.
func currentSettings() (domain.AppSettings, error) {
	if appSettings != nil {
		return *appSettings, nil
	}
	settings := domain.DefaultAppSettings()
	if err := applyOverrides(&settings, opts); err != nil {
		return settings, err
	}
	return settings, nil
}

func requireRecords() error {
	if recordService == nil {
		return errors.New("record service not configured")
	}
	return nil
}

func requireReports() error {
	if reportService == nil {
		return errors.New("report service not configured")
	}
	return nil
}

func needsRecords() map[string]string {
	return map[string]string{annotationRecords: "true"}
}
