package export

import (
	"context"

	"github.com/custodia-labs/safedrive/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
)

// Ensure JSONExporter implements the interface.
var _ driven.Exporter = (*JSONExporter)(nil)

// JSONExporter writes all records in the canonical document shape.
// It never touches the autosave file.
type JSONExporter struct{}

// NewJSONExporter creates a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Format returns domain.ExportJSON.
func (e *JSONExporter) Format() domain.ExportFormat {
	return domain.ExportJSON
}

// Export writes records to path.
func (e *JSONExporter) Export(ctx context.Context, records domain.Records, path string) error {
	data, err := jsonfile.Encode(records)
	if err != nil {
		return domain.NewIOFailure("export json", path, err)
	}
	return writeFile(ctx, domain.ExportJSON, path, data)
}
