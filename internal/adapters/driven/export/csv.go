package export

import (
	"bytes"
	"context"
	"encoding/csv"

	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
)

// Ensure CSVExporter implements the interface.
var _ driven.Exporter = (*CSVExporter)(nil)

// CSVExporter writes trips as CSV. Vehicles and drivers are not included.
// Rows end in CRLF as RFC 4180 and spreadsheet tools expect.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Format returns domain.ExportCSV.
func (e *CSVExporter) Format() domain.ExportFormat {
	return domain.ExportCSV
}

// Export writes the trips of records to path.
func (e *CSVExporter) Export(ctx context.Context, records domain.Records, path string) error {
	data, err := RenderCSV(records.Trips)
	if err != nil {
		return domain.NewIOFailure("export csv", path, err)
	}
	return writeFile(ctx, domain.ExportCSV, path, data)
}

// RenderCSV encodes trips with a header row, in collection order.
func RenderCSV(trips []domain.Trip) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(domain.TripFields); err != nil {
		return nil, err
	}
	for i := range trips {
		if err := w.Write(trips[i].Fields()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
