package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/safedrive/internal/adapters/driven/config/file"
	"github.com/custodia-labs/safedrive/internal/adapters/driven/export"
	"github.com/custodia-labs/safedrive/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/safedrive/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/safedrive/internal/adapters/driven/watch"
	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
	"github.com/custodia-labs/safedrive/internal/core/services"
	"github.com/custodia-labs/safedrive/internal/logger"
)

// testConnector builds real services over a config dir and data files
// inside a temporary directory.
type testConnector struct {
	configDir string
	memory    *memory.RecordStore
	connects  int
	closes    int
	failSave  bool
}

func newTestConnector(t *testing.T) *testConnector {
	t.Helper()
	return &testConnector{
		configDir: t.TempDir(),
		memory:    memory.NewRecordStore(domain.Records{}),
	}
}

func (c *testConnector) Settings(configDir string) (driving.SettingsService, error) {
	if configDir == "" {
		configDir = c.configDir
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

func (c *testConnector) Connect(_ context.Context, settings domain.AppSettings) (*Services, error) {
	c.connects++
	var repo driven.RecordRepository = jsonfile.NewStore(settings.RecordPath())
	if settings.Backend == domain.StorageMemory {
		repo = c.memory
	}
	if c.failSave {
		repo = failingSaves{repo}
	}
	records := services.NewRecordService(repo)
	reports := services.NewReportService(records,
		export.NewCSVExporter(), export.NewJSONExporter(), export.NewPDFExporter())
	reports.SetExportDir(settings.ExportDir)
	return &Services{
		Records: records,
		Reports: reports,
		Watcher: watch.NewFileWatcher(),
		Close: func() error {
			c.closes++
			return nil
		},
	}, nil
}

// failingSaves loads normally and fails every save.
type failingSaves struct {
	driven.RecordRepository
}

func (f failingSaves) Save(context.Context, domain.Records) error {
	return domain.NewIOFailure("save", f.Location(), errors.New("disk full"))
}

// syncBuffer is a bytes.Buffer safe for a command writing while a test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// execute runs rootCmd with args and returns everything it printed.
func execute(t *testing.T, c Connector, args ...string) (string, error) {
	t.Helper()
	return executeContext(context.Background(), t, c, "", args...)
}

func executeContext(ctx context.Context, t *testing.T, c Connector, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(syncBuffer)
	err := run(ctx, t, c, out, stdin, args...)
	return out.String(), err
}

func run(ctx context.Context, t *testing.T, c Connector, out *syncBuffer, stdin string, args ...string) error {
	t.Helper()
	resetCLI()
	t.Cleanup(resetCLI)

	SetConnector(c)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// resetCLI restores package state and flag values between runs.
func resetCLI() {
	connector = nil
	settingsService = nil
	appSettings = nil
	recordService = nil
	reportService = nil
	changeWatcher = nil
	closeServices = nil

	rootCmd.SetArgs(nil)
	rootCmd.SetIn(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	resetFlags(rootCmd)
	opts = Options{}
	logger.SetVerbose(false)
}

// resetFlags also clears contexts; cobra only hands a new context to
// subcommands whose context is still nil.
func resetFlags(cmd *cobra.Command) {
	//nolint:staticcheck // nil clears the context left by a previous run
	cmd.SetContext(nil)
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// dataArgs prefixes args with flags pointing at a data file in dir.
func dataArgs(c *testConnector, data string, args ...string) []string {
	return append([]string{"--config-dir", c.configDir, "--data", data}, args...)
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	require.Contains(t, out, want, "output:\n%s", out)
}
