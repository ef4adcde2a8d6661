package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/safedrive/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/safedrive/internal/core/domain"
)

func TestNewRecordService(t *testing.T) {
	service := NewRecordService(memory.NewRecordStore(domain.Records{}))

	require.NotNil(t, service)
	assert.Empty(t, service.Trips())
	assert.Empty(t, service.Vehicles())
	assert.Empty(t, service.Drivers())
	assert.Equal(t, ":memory:", service.Location())
}

func TestRecordService_Open_LoadsPersisted(t *testing.T) {
	repo := memory.NewRecordStore(domain.Records{
		Trips:   []domain.Trip{{TripID: "T1", Distance: "4"}},
		Drivers: []domain.Driver{{DriverID: "D1", Name: "Ana"}},
	})
	service := NewRecordService(repo)

	require.NoError(t, service.Open(context.Background()))

	assert.Equal(t, []domain.Trip{{TripID: "T1", Distance: "4"}}, service.Trips())
	assert.Equal(t, []domain.Driver{{DriverID: "D1", Name: "Ana"}}, service.Drivers())
}

func TestRecordService_Open_CorruptState(t *testing.T) {
	repo := &failingRepository{loadErr: domain.NewCorruptStateError("data.json", errBoom)}
	service := NewRecordService(repo)

	err := service.Open(context.Background())

	assert.ErrorIs(t, err, domain.ErrCorruptState)
	assert.Empty(t, service.Trips())
}

func TestRecordService_NilRepository(t *testing.T) {
	service := NewRecordService(nil)
	ctx := context.Background()

	assert.ErrorIs(t, service.Open(ctx), domain.ErrNotImplemented)
	assert.ErrorIs(t, service.AddTrip(ctx, domain.Trip{}), domain.ErrNotImplemented)
	assert.Empty(t, service.Location())
}

func TestRecordService_AddTrip_PreservesOrderAndValues(t *testing.T) {
	service := NewRecordService(memory.NewRecordStore(domain.Records{}))
	ctx := context.Background()

	trips := []domain.Trip{
		{TripID: "T1", Vehicle: "V1", Driver: "D1", Distance: "12.5"},
		{TripID: "T1", Vehicle: "V1", Driver: "D1", Distance: "12.5"},
		{TripID: "", Vehicle: "", Driver: "", Distance: ""},
		{TripID: " padded ", Vehicle: "a,b", Driver: "\"quoted\"", Distance: "-3"},
		{TripID: "T✓", Vehicle: "Škoda", Driver: "Zoë", Distance: "abc"},
	}
	for _, trip := range trips {
		require.NoError(t, service.AddTrip(ctx, trip))
	}

	assert.Equal(t, trips, service.Trips())
}

func TestRecordService_AddEachKind_SavesEveryTime(t *testing.T) {
	repo := memory.NewRecordStore(domain.Records{})
	service := NewRecordService(repo)
	ctx := context.Background()

	require.NoError(t, service.AddTrip(ctx, domain.Trip{TripID: "T1"}))
	require.NoError(t, service.AddVehicle(ctx, domain.Vehicle{VehicleID: "V1", Model: "Hilux"}))
	require.NoError(t, service.AddDriver(ctx, domain.Driver{DriverID: "D1", Name: "Ana"}))

	assert.Equal(t, 3, repo.Saves())

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.Snapshot(), persisted)
}

func TestRecordService_Add_SaveFailureRollsBack(t *testing.T) {
	repo := &failingRepository{seed: domain.Records{Trips: []domain.Trip{{TripID: "T0"}}}}
	service := NewRecordService(repo)
	ctx := context.Background()
	require.NoError(t, service.Open(ctx))

	err := service.AddTrip(ctx, domain.Trip{TripID: "T1"})
	assert.ErrorIs(t, err, domain.ErrIOFailure)
	assert.Contains(t, err.Error(), "saving trip")

	assert.ErrorIs(t, service.AddVehicle(ctx, domain.Vehicle{VehicleID: "V1"}), domain.ErrIOFailure)
	assert.ErrorIs(t, service.AddDriver(ctx, domain.Driver{DriverID: "D1"}), domain.ErrIOFailure)

	assert.Equal(t, []domain.Trip{{TripID: "T0"}}, service.Trips())
	assert.Empty(t, service.Vehicles())
	assert.Empty(t, service.Drivers())
}

func TestRecordService_ReadsAreCopies(t *testing.T) {
	service := NewRecordService(memory.NewRecordStore(domain.Records{}))
	ctx := context.Background()
	require.NoError(t, service.AddTrip(ctx, domain.Trip{TripID: "T1"}))

	trips := service.Trips()
	trips[0].TripID = "changed"
	_ = append(trips, domain.Trip{TripID: "extra"})

	assert.Equal(t, []domain.Trip{{TripID: "T1"}}, service.Trips())
}

func TestRecordService_Reload(t *testing.T) {
	repo := memory.NewRecordStore(domain.Records{})
	service := NewRecordService(repo)
	ctx := context.Background()
	require.NoError(t, service.Open(ctx))

	// Another writer replaces the persisted records.
	require.NoError(t, repo.Save(ctx, domain.Records{Vehicles: []domain.Vehicle{{VehicleID: "V9"}}}))
	require.NoError(t, service.Reload(ctx))

	assert.Equal(t, []domain.Vehicle{{VehicleID: "V9"}}, service.Vehicles())
}

func TestRecordService_Reload_ErrorKeepsRecords(t *testing.T) {
	repo := &failingRepository{seed: domain.Records{Trips: []domain.Trip{{TripID: "T1"}}}}
	service := NewRecordService(repo)
	ctx := context.Background()
	require.NoError(t, service.Open(ctx))

	repo.loadErr = domain.NewCorruptStateError("x", errBoom)
	err := service.Reload(ctx)

	assert.ErrorIs(t, err, domain.ErrCorruptState)
	assert.Contains(t, err.Error(), "reloading records")
	assert.Len(t, service.Trips(), 1)
}

func TestRecordService_ConcurrentAddAndRead(t *testing.T) {
	repo := memory.NewRecordStore(domain.Records{})
	service := NewRecordService(repo)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = service.AddTrip(ctx, domain.Trip{Distance: "1"})
		}()
		go func() {
			defer wg.Done()
			_ = service.Snapshot()
		}()
	}
	wg.Wait()

	assert.Len(t, service.Trips(), 20)
	assert.Equal(t, 20, repo.Saves())
}
