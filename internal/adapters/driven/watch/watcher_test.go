package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/safedrive/internal/fileutil"
)

func TestIsChange(t *testing.T) {
	target := filepath.Join(string(filepath.Separator), "data", "safedrive_data.json")

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{"create target", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"write target", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"rename target", fsnotify.Event{Name: target, Op: fsnotify.Rename}, true},
		{"chmod target", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"remove target", fsnotify.Event{Name: target, Op: fsnotify.Remove}, false},
		{"write sibling", fsnotify.Event{Name: target + ".tmp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isChange(tt.event, target))
		})
	}
}

func TestFileWatcher_Watch(t *testing.T) {
	t.Run("detects in-place writes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "safedrive_data.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		changes, err := NewFileWatcher().Watch(ctx, path)
		require.NoError(t, err)

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.WriteFile(path, []byte(`{"Trips": []}`), 0o644)
		}()

		select {
		case <-changes:
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for write notification")
		}
	})

	t.Run("detects atomic replacement", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "safedrive_data.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		changes, err := NewFileWatcher().Watch(ctx, path)
		require.NoError(t, err)

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = fileutil.WriteAtomic(path, []byte(`{"Drivers": []}`), 0o644)
		}()

		select {
		case <-changes:
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for replacement notification")
		}
	})

	t.Run("detects creation of a missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "safedrive_data.json")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		changes, err := NewFileWatcher().Watch(ctx, path)
		require.NoError(t, err)

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.WriteFile(path, []byte("{}"), 0o644)
		}()

		select {
		case <-changes:
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for create notification")
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "safedrive_data.json")

		changes, err := NewFileWatcher().Watch(context.Background(), path)

		assert.Error(t, err)
		assert.Nil(t, changes)
		assert.Contains(t, err.Error(), "watching")
	})

	t.Run("closes channel when context is cancelled", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "safedrive_data.json")
		ctx, cancel := context.WithCancel(context.Background())

		changes, err := NewFileWatcher().Watch(ctx, path)
		require.NoError(t, err)

		cancel()

		deadline := time.After(2 * time.Second)
		for {
			select {
			case _, ok := <-changes:
				if !ok {
					return
				}
			case <-deadline:
				t.Fatal("channel did not close after context cancellation")
			}
		}
	})
}
