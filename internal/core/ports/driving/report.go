package driving

import (
	"context"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// ReportService produces summaries and export documents.
// It only reads the record store.
type ReportService interface {
	// Summary computes aggregate figures over the current records.
	Summary() domain.Summary

	// Export writes the current records in format to path.
	Export(ctx context.Context, format domain.ExportFormat, path string) error

	// ExportCSV writes the trips as CSV to path.
	ExportCSV(ctx context.Context, path string) error

	// ExportJSON writes all records as a JSON document to path.
	ExportJSON(ctx context.Context, path string) error

	// ExportPDF writes a printable summary to path.
	ExportPDF(ctx context.Context, path string) error
}
