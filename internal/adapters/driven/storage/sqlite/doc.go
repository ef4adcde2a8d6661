// Package sqlite provides a SQLite-based implementation of driven.RecordRepository.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Each collection lives in its own table
// with an autoincrement seq column that preserves insertion order:
//
//   - trips: trip_id, vehicle, driver, distance
//   - vehicles: vehicle_id, model
//   - drivers: driver_id, name
//
// # Schema
//
// The schema is created from the embedded migrations/ directory on open.
//
// # Saving
//
// Save replaces every row inside one transaction, mirroring the whole-document
// writes of the JSON backend. A failed save rolls back and leaves the previous
// rows in place.
package sqlite
