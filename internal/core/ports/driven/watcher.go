package driven

import "context"

// ChangeWatcher reports modifications of a file made outside the process.
type ChangeWatcher interface {
	// Watch emits a value each time path is created, written or replaced.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
