// Package export renders expense reports into downloadable artifacts
// and manages their storage on disk.
package export

import (
	"time"

	"github.com/yasinga/yasinga/internal/models"
)

// ReportDocument carries everything a renderer needs to produce an
// artifact for one report window.
type ReportDocument struct {
	OwnerName    string
	OwnerEmail   string
	Window       string
	PeriodStart  time.Time
	PeriodEnd    time.Time
	GeneratedAt  time.Time
	Summary      *models.ReportSummary
	Transactions []models.Transaction
}

// Renderer produces one artifact format
type Renderer interface {
	// Render serializes the document into the renderer's format
	Render(doc *ReportDocument) ([]byte, error)
	// Extension returns the file extension without the dot
	Extension() string
}

// NewRenderer returns the renderer for a report format
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case models.ReportFormatPDF:
		return &pdfRenderer{}, nil
	case models.ReportFormatCSV:
		return &csvRenderer{}, nil
	case models.ReportFormatXLSX:
		return &xlsxRenderer{}, nil
	default:
		return nil, models.ErrInvalidReportFormat
	}
}

func categoryName(t *models.Transaction) string {
	if t.Category != nil {
		return t.Category.Name
	}
	return "Uncategorized"
}
