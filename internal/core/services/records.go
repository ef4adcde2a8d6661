package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
	"github.com/custodia-labs/safedrive/internal/logger"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

var recordLog = logger.Component("records")

// RecordService holds the trip, vehicle and driver collections and
// persists them through the repository after every add.
//
// One mutex guards all three collections for the whole append+save, so a
// reader never observes a record that failed to persist.
type RecordService struct {
	mu      sync.RWMutex
	repo    driven.RecordRepository
	records domain.Records
}

// NewRecordService creates a record service backed by repo.
// The service starts empty; call Open to load persisted records.
func NewRecordService(repo driven.RecordRepository) *RecordService {
	return &RecordService{
		repo:    repo,
		records: domain.Records{}.Clone(),
	}
}

// Open loads the persisted records, replacing anything held in memory.
func (s *RecordService) Open(ctx context.Context) error {
	return s.load(ctx, "opening")
}

// Reload re-reads the persisted records. On error the held records are kept.
func (s *RecordService) Reload(ctx context.Context) error {
	return s.load(ctx, "reloading")
}

func (s *RecordService) load(ctx context.Context, verb string) error {
	if s.repo == nil {
		return domain.ErrNotImplemented
	}

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s records: %w", verb, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = loaded.Clone()
	recordLog.Debug("%s %s: %d trips, %d vehicles, %d drivers", verb, s.repo.Location(),
		len(s.records.Trips), len(s.records.Vehicles), len(s.records.Drivers))
	return nil
}

// AddTrip appends trip exactly as given and persists the store.
func (s *RecordService) AddTrip(ctx context.Context, trip domain.Trip) error {
	return s.add(ctx, "trip", func(r *domain.Records) func() {
		n := len(r.Trips)
		r.Trips = append(r.Trips, trip)
		return func() { r.Trips = r.Trips[:n] }
	})
}

// AddVehicle appends vehicle exactly as given and persists the store.
func (s *RecordService) AddVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	return s.add(ctx, "vehicle", func(r *domain.Records) func() {
		n := len(r.Vehicles)
		r.Vehicles = append(r.Vehicles, vehicle)
		return func() { r.Vehicles = r.Vehicles[:n] }
	})
}

// AddDriver appends driver exactly as given and persists the store.
func (s *RecordService) AddDriver(ctx context.Context, driver domain.Driver) error {
	return s.add(ctx, "driver", func(r *domain.Records) func() {
		n := len(r.Drivers)
		r.Drivers = append(r.Drivers, driver)
		return func() { r.Drivers = r.Drivers[:n] }
	})
}

// add applies an append and saves. If the save fails the append is undone
// so memory keeps matching what is on disk.
func (s *RecordService) add(ctx context.Context, kind string, apply func(*domain.Records) func()) error {
	if s.repo == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	undo := apply(&s.records)
	if err := s.repo.Save(ctx, s.records); err != nil {
		undo()
		recordLog.Warn("save after adding %s failed: %v", kind, err)
		return fmt.Errorf("saving %s: %w", kind, err)
	}
	recordLog.Debug("added %s, saved to %s", kind, s.repo.Location())
	return nil
}

// Trips returns a copy of all trips in insertion order.
func (s *RecordService) Trips() []domain.Trip {
	return s.Snapshot().Trips
}

// Vehicles returns a copy of all vehicles in insertion order.
func (s *RecordService) Vehicles() []domain.Vehicle {
	return s.Snapshot().Vehicles
}

// Drivers returns a copy of all drivers in insertion order.
func (s *RecordService) Drivers() []domain.Driver {
	return s.Snapshot().Drivers
}

// Snapshot returns a copy of all three collections.
func (s *RecordService) Snapshot() domain.Records {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.Clone()
}

// Location describes where records are persisted.
func (s *RecordService) Location() string {
	if s.repo == nil {
		return ""
	}
	return s.repo.Location()
}
