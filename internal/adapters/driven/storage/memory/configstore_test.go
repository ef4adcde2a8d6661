package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()

	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestNewConfigStore_Seeded(t *testing.T) {
	store := NewConfigStore(map[string]any{"storage.backend": "sqlite"})

	assert.Equal(t, "sqlite", store.GetString("storage.backend"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("storage.path", "trips.json"))
	require.NoError(t, store.Set("log.verbose", true))

	val, ok := store.Get("storage.path")
	assert.True(t, ok)
	assert.Equal(t, "trips.json", val)
	assert.True(t, store.GetBool("log.verbose"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store := NewConfigStore(map[string]any{"a": 1, "b": "yes"})

	assert.Empty(t, store.GetString("a"))
	assert.False(t, store.GetBool("b"))
	assert.Empty(t, store.GetString("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Load_NoOp(t *testing.T) {
	store := NewConfigStore()
	assert.NoError(t, store.Load())
}
