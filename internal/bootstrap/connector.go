// Package bootstrap wires driven adapters into the core services for the
// command line. It is the only package that knows every adapter.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/custodia-labs/safedrive/internal/adapters/driven/config/file"
	"github.com/custodia-labs/safedrive/internal/adapters/driven/export"
	"github.com/custodia-labs/safedrive/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/safedrive/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/safedrive/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/safedrive/internal/adapters/driven/watch"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/cli"
	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
	"github.com/custodia-labs/safedrive/internal/core/services"
	"github.com/custodia-labs/safedrive/internal/logger"
)

// Connector implements cli.Connector with the production adapters.
type Connector struct{}

var _ cli.Connector = (*Connector)(nil)

// NewConnector creates a Connector.
func NewConnector() *Connector {
	return &Connector{}
}

// Settings opens the TOML config store in configDir.
func (c *Connector) Settings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

// Connect opens the record backend chosen by settings and builds the
// record and report services over it. Records are not loaded.
func (c *Connector) Connect(_ context.Context, settings domain.AppSettings) (*cli.Services, error) {
	repo, closeRepo, err := OpenRepository(settings)
	if err != nil {
		return nil, err
	}

	records := services.NewRecordService(repo)
	reports := services.NewReportService(records,
		export.NewCSVExporter(),
		export.NewJSONExporter(),
		export.NewPDFExporter(),
	)
	reports.SetExportDir(settings.ExportDir)

	return &cli.Services{
		Records: records,
		Reports: reports,
		Watcher: watch.NewFileWatcher(),
		Close:   closeRepo,
	}, nil
}

// OpenRepository returns the record repository for settings and a function
// releasing it.
func OpenRepository(settings domain.AppSettings) (driven.RecordRepository, func() error, error) {
	noop := func() error { return nil }

	switch settings.Backend {
	case domain.StorageJSON:
		logger.Debug("using json file %s", settings.RecordPath())
		return jsonfile.NewStore(settings.RecordPath()), noop, nil

	case domain.StorageSQLite:
		logger.Debug("using sqlite database %s", settings.RecordPath())
		store, err := sqlite.NewStore(settings.RecordPath())
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case domain.StorageMemory:
		logger.Debug("using in-memory records")
		return memory.NewRecordStore(domain.Records{}), noop, nil

	default:
		return nil, nil, fmt.Errorf("%q: %w", settings.Backend, domain.ErrUnsupportedBackend)
	}
}
