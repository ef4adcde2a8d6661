package driving

import (
	"context"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// RecordService is the record store used by every front end.
// Collections are append-only; there is no update or delete.
type RecordService interface {
	// Open loads the persisted records. A missing file is an empty store.
	Open(ctx context.Context) error

	// Reload replaces the in-memory records with the persisted ones.
	Reload(ctx context.Context) error

	// AddTrip appends a trip verbatim and persists the store.
	AddTrip(ctx context.Context, trip domain.Trip) error

	// AddVehicle appends a vehicle verbatim and persists the store.
	AddVehicle(ctx context.Context, vehicle domain.Vehicle) error

	// AddDriver appends a driver verbatim and persists the store.
	AddDriver(ctx context.Context, driver domain.Driver) error

	// Trips returns a copy of all trips in insertion order.
	Trips() []domain.Trip

	// Vehicles returns a copy of all vehicles in insertion order.
	Vehicles() []domain.Vehicle

	// Drivers returns a copy of all drivers in insertion order.
	Drivers() []domain.Driver

	// Snapshot returns a copy of all three collections.
	Snapshot() domain.Records

	// Location describes where records are persisted.
	Location() string
}
