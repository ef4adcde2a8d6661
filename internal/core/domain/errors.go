package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrCorruptState indicates the persisted record file exists but cannot
	// be read back into the expected shape.
	ErrCorruptState = errors.New("corrupt state")

	// ErrIOFailure indicates a read or write of a record file failed.
	ErrIOFailure = errors.New("i/o failure")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedFormat indicates an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnsupportedBackend indicates an unknown storage backend.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	// ErrNotConfirmed indicates a destructive action was not confirmed by the user.
	ErrNotConfirmed = errors.New("not confirmed")
)

// CorruptStateError reports a record file that could not be parsed.
// The file is left untouched; recovering requires an explicit reset.
type CorruptStateError struct {
	Path string
	Err  error
}

// NewCorruptStateError wraps err as a CorruptStateError for path.
func NewCorruptStateError(path string, err error) *CorruptStateError {
	return &CorruptStateError{Path: path, Err: err}
}

func (e *CorruptStateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("corrupt state in %s", e.Path)
	}
	return fmt.Sprintf("corrupt state in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCorruptState.
func (e *CorruptStateError) Is(target error) bool {
	return target == ErrCorruptState
}

// IOFailure reports a failed read or write. Op names the operation
// ("load", "save", "export csv", ...).
type IOFailure struct {
	Op   string
	Path string
	Err  error
}

// NewIOFailure wraps err as an IOFailure.
func NewIOFailure(op, path string, err error) *IOFailure {
	return &IOFailure{Op: op, Path: path, Err: err}
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *IOFailure) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIOFailure.
func (e *IOFailure) Is(target error) bool {
	return target == ErrIOFailure
}
