package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
)

// Ensure PDFExporter implements the interface.
var _ driven.Exporter = (*PDFExporter)(nil)

// Trip table column widths in mm; they add up to the A4 text width.
var pdfColumns = []float64{40, 50, 50, 50}

// PDFExporter writes a printable report: the summary followed by all trips.
type PDFExporter struct {
	now func() time.Time
}

// NewPDFExporter creates a PDF exporter stamping reports with the current time.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{now: time.Now}
}

// Format returns domain.ExportPDF.
func (e *PDFExporter) Format() domain.ExportFormat {
	return domain.ExportPDF
}

// Export writes the report for records to path.
func (e *PDFExporter) Export(ctx context.Context, records domain.Records, path string) error {
	data, err := RenderPDF(records, e.now())
	if err != nil {
		return domain.NewIOFailure("export pdf", path, err)
	}
	return writeFile(ctx, domain.ExportPDF, path, data)
}

// RenderPDF builds the report document.
func RenderPDF(records domain.Records, generated time.Time) ([]byte, error) {
	summary := domain.Summarize(records)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("SafeDrive Trip Report", true)
	pdf.SetCreationDate(generated)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SafeDrive - Vehicle Trip Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+generated.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Total Trips: %d", summary.TripCount),
		fmt.Sprintf("Total Distance: %s km", domain.FormatDistance(summary.TotalDistance)),
		fmt.Sprintf("Vehicles Registered: %d", summary.VehicleCount),
		fmt.Sprintf("Drivers Registered: %d", summary.DriverCount),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trips")
	pdf.Ln(8)

	if len(records.Trips) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "No trips recorded.")
		pdf.Ln(6)
	} else {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, name := range domain.TripFields {
			pdf.CellFormat(pdfColumns[i], 7, name, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 10)
		for _, trip := range records.Trips {
			for i, value := range trip.Fields() {
				text := fitText(pdf, tr(value), pdfColumns[i]-2)
				pdf.CellFormat(pdfColumns[i], 6, text, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// fitText shortens s with a trailing "..." until it fits width.
func fitText(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
