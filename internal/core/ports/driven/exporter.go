package driven

import (
	"context"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// Exporter writes records to a user chosen destination in one format.
type Exporter interface {
	// Format returns the export format produced.
	Format() domain.ExportFormat

	// Export writes records to path, replacing any existing file.
	// Failures are reported as *domain.IOFailure.
	Export(ctx context.Context, records domain.Records, path string) error
}
