package domain

// Default record locations per backend.
const (
	// DefaultDataPath is the canonical record file used when nothing else is configured.
	DefaultDataPath = "safedrive_data.json"

	// DefaultSQLitePath is used by the sqlite backend when DataPath is left at its default.
	DefaultSQLitePath = "safedrive_data.db"
)

// StorageBackend selects the persistence adapter for records.
type StorageBackend string

// Available storage backends.
const (
	// StorageJSON keeps records in the canonical JSON document.
	StorageJSON StorageBackend = "json"

	// StorageSQLite keeps records in a SQLite database file.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps records in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageJSON, StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// Persistent reports whether records survive a restart.
func (b StorageBackend) Persistent() bool {
	return b == StorageJSON || b == StorageSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageJSON:
		return "JSON document"
	case StorageSQLite:
		return "SQLite database"
	case StorageMemory:
		return "In-memory (not persisted)"
	default:
		return "Unknown"
	}
}

// Settings keys in the configuration file.
const (
	SettingStorageBackend = "storage.backend"
	SettingStoragePath    = "storage.path"
	SettingExportDir      = "export.dir"
	SettingLogVerbose     = "log.verbose"
)

// AppSettings holds the user configurable behaviour of the application.
type AppSettings struct {
	// Backend selects the persistence adapter.
	Backend StorageBackend

	// DataPath is the record file location for persistent backends.
	DataPath string

	// ExportDir is prepended to relative export destinations when set.
	ExportDir string

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultAppSettings returns the settings used on first run.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Backend:  StorageJSON,
		DataPath: DefaultDataPath,
	}
}

// RecordPath returns where the configured backend keeps its records.
// The sqlite backend swaps the default JSON file name for a .db file.
func (s AppSettings) RecordPath() string {
	if s.Backend == StorageSQLite && (s.DataPath == "" || s.DataPath == DefaultDataPath) {
		return DefaultSQLitePath
	}
	if s.DataPath == "" {
		return DefaultDataPath
	}
	return s.DataPath
}
