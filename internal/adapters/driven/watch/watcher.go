// Package watch notifies about changes to the record file made by other
// processes, such as a second safedrive invocation or a manual edit.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
	"github.com/custodia-labs/safedrive/internal/logger"
)

var log = logger.Component("watch")

// Ensure FileWatcher implements the interface.
var _ driven.ChangeWatcher = (*FileWatcher)(nil)

// FileWatcher watches a single file through its parent directory.
// Watching the directory keeps working across atomic replacements,
// which swap the inode the file name points to.
type FileWatcher struct{}

// NewFileWatcher creates a file watcher.
func NewFileWatcher() *FileWatcher {
	return &FileWatcher{}
}

// Watch emits on the returned channel whenever path is created, written
// or renamed. Bursts of events are coalesced: at most one notification is
// pending at a time.
func (w *FileWatcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	dir := filepath.Dir(target)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	log.Debug("watching %s", target)

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isChange(event, target) {
					continue
				}
				log.Debug("%s: %s", event.Op, event.Name)
				select {
				case out <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("watch error: %v", err)
			}
		}
	}()

	return out, nil
}

// isChange reports whether event modifies target.
func isChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}
