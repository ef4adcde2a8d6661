package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/custodia-labs/safedrive/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
	"github.com/custodia-labs/safedrive/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.RecordRepository = (*Store)(nil)

var log = logger.Component("sqlite")

// Store keeps records in a SQLite database file.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database at path and applies the schema.
// If path is empty, defaults to safedrive_data.db in the working directory.
// A file that exists but is not a SQLite database yields a *domain.CorruptStateError.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = domain.DefaultSQLitePath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, domain.NewIOFailure("open", path, err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, domain.NewIOFailure("open", path, err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		if isNotADatabase(err) {
			return nil, domain.NewCorruptStateError(path, err)
		}
		return nil, domain.NewIOFailure("open", path, err)
	}

	log.Debug("opened %s", path)
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Location returns the database file path.
func (s *Store) Location() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_records.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Load reads every collection ordered by insertion.
func (s *Store) Load(ctx context.Context) (domain.Records, error) {
	records := domain.Records{}.Clone()

	if err := s.query(ctx, "SELECT trip_id, vehicle, driver, distance FROM trips ORDER BY seq",
		func(rows *sql.Rows) error {
			var t domain.Trip
			if err := rows.Scan(&t.TripID, &t.Vehicle, &t.Driver, &t.Distance); err != nil {
				return err
			}
			records.Trips = append(records.Trips, t)
			return nil
		}); err != nil {
		return domain.Records{}, err
	}

	if err := s.query(ctx, "SELECT vehicle_id, model FROM vehicles ORDER BY seq",
		func(rows *sql.Rows) error {
			var v domain.Vehicle
			if err := rows.Scan(&v.VehicleID, &v.Model); err != nil {
				return err
			}
			records.Vehicles = append(records.Vehicles, v)
			return nil
		}); err != nil {
		return domain.Records{}, err
	}

	if err := s.query(ctx, "SELECT driver_id, name FROM drivers ORDER BY seq",
		func(rows *sql.Rows) error {
			var d domain.Driver
			if err := rows.Scan(&d.DriverID, &d.Name); err != nil {
				return err
			}
			records.Drivers = append(records.Drivers, d)
			return nil
		}); err != nil {
		return domain.Records{}, err
	}

	return records, nil
}

func (s *Store) query(ctx context.Context, q string, scan func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return domain.NewIOFailure("load", s.path, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return domain.NewCorruptStateError(s.path, err)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.NewIOFailure("load", s.path, err)
	}
	return nil
}

// Save replaces all rows with records in a single transaction.
func (s *Store) Save(ctx context.Context, records domain.Records) error {
	if err := s.save(ctx, records); err != nil {
		return domain.NewIOFailure("save", s.path, err)
	}
	log.Debug("saved %d trips, %d vehicles, %d drivers",
		len(records.Trips), len(records.Vehicles), len(records.Drivers))
	return nil
}

func (s *Store) save(ctx context.Context, records domain.Records) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"trips", "vehicles", "drivers"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, t := range records.Trips {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO trips (trip_id, vehicle, driver, distance) VALUES (?, ?, ?, ?)",
			t.TripID, t.Vehicle, t.Driver, t.Distance); err != nil {
			return fmt.Errorf("inserting trip: %w", err)
		}
	}
	for _, v := range records.Vehicles {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO vehicles (vehicle_id, model) VALUES (?, ?)",
			v.VehicleID, v.Model); err != nil {
			return fmt.Errorf("inserting vehicle: %w", err)
		}
	}
	for _, d := range records.Drivers {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO drivers (driver_id, name) VALUES (?, ?)",
			d.DriverID, d.Name); err != nil {
			return fmt.Errorf("inserting driver: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// isNotADatabase reports whether err comes from opening a non-SQLite file.
func isNotADatabase(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_NOTADB
	}
	return false
}
