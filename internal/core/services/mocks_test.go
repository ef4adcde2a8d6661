package services

import (
	"context"
	"errors"
	"io/fs"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// failingRepository loads seed and fails every save with a permission error.
type failingRepository struct {
	seed    domain.Records
	loadErr error
}

func (r *failingRepository) Load(_ context.Context) (domain.Records, error) {
	if r.loadErr != nil {
		return domain.Records{}, r.loadErr
	}
	return r.seed.Clone(), nil
}

func (r *failingRepository) Save(_ context.Context, _ domain.Records) error {
	return domain.NewIOFailure("save", r.Location(), fs.ErrPermission)
}

func (r *failingRepository) Location() string {
	return "/read-only/safedrive_data.json"
}

// recordingExporter remembers what it was asked to export.
type recordingExporter struct {
	format  domain.ExportFormat
	path    string
	records domain.Records
	calls   int
	err     error
}

func (e *recordingExporter) Format() domain.ExportFormat {
	return e.format
}

func (e *recordingExporter) Export(_ context.Context, records domain.Records, path string) error {
	e.calls++
	e.path = path
	e.records = records
	return e.err
}

var errBoom = errors.New("boom")
