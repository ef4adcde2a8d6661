package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

func TestNewRecordStore_Empty(t *testing.T) {
	store := NewRecordStore(domain.Records{})

	records, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, records.IsEmpty())
	assert.Equal(t, 0, store.Saves())
}

func TestRecordStore_SaveAndLoad(t *testing.T) {
	store := NewRecordStore(domain.Records{})
	ctx := context.Background()

	in := domain.Records{
		Trips:    []domain.Trip{{TripID: "T1", Vehicle: "V1", Driver: "D1", Distance: "12.5"}},
		Vehicles: []domain.Vehicle{{VehicleID: "V1", Model: "Hilux"}},
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in.Trips, out.Trips)
	assert.Equal(t, in.Vehicles, out.Vehicles)
	assert.Empty(t, out.Drivers)
	assert.Equal(t, 1, store.Saves())
}

func TestRecordStore_CopiesOnSave(t *testing.T) {
	store := NewRecordStore(domain.Records{})
	ctx := context.Background()

	in := domain.Records{Trips: []domain.Trip{{TripID: "T1"}}}
	require.NoError(t, store.Save(ctx, in))
	in.Trips[0].TripID = "mutated"

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", out.Trips[0].TripID)
}

func TestRecordStore_Save_CancelledContext(t *testing.T) {
	store := NewRecordStore(domain.Records{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Save(ctx, domain.Records{})

	assert.ErrorIs(t, err, domain.ErrIOFailure)
	assert.Equal(t, 0, store.Saves())
}

func TestRecordStore_ConcurrentAccess(t *testing.T) {
	store := NewRecordStore(domain.Records{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, domain.Records{Drivers: []domain.Driver{{DriverID: "D"}}})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Load(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, store.Saves())
}
