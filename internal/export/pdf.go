package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/yasinga/yasinga/internal/models"
)

// pdfRenderer renders a report as a printable A4 PDF
type pdfRenderer struct{}

func (r *pdfRenderer) Extension() string {
	return "pdf"
}

func (r *pdfRenderer) Render(doc *ReportDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Expense Report (%s)", doc.Window), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Expense Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%s  |  %s to %s",
		doc.OwnerName,
		doc.PeriodStart.Format("2 Jan 2006"),
		doc.PeriodEnd.Format("2 Jan 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", doc.GeneratedAt.Format("2 Jan 2006 15:04")))
	pdf.Ln(10)

	r.writeSummary(pdf, doc.Summary)
	r.writeTopCategories(pdf, doc.Summary.TopCategories)
	r.writeTransactions(pdf, doc.Transactions)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) writeSummary(pdf *gofpdf.Fpdf, summary *models.ReportSummary) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	rows := [][2]string{
		{"Total Sent", "KES " + summary.TotalSent.StringFixed(2)},
		{"Total Received", "KES " + summary.TotalReceived.StringFixed(2)},
		{"Business Expenses", "KES " + summary.BusinessTotal.StringFixed(2)},
		{"Personal Expenses", "KES " + summary.PersonalTotal.StringFixed(2)},
		{"Transactions", fmt.Sprintf("%d", summary.TransactionCount)},
	}
	for _, row := range rows {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func (r *pdfRenderer) writeTopCategories(pdf *gofpdf.Fpdf, categories []models.CategoryTotal) {
	if len(categories) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Top Categories")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.Cell(70, 6, "Category")
	pdf.Cell(30, 6, "Kind")
	pdf.Cell(40, 6, "Amount")
	pdf.Cell(0, 6, "Count")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	for _, c := range categories {
		pdf.Cell(70, 6, c.Name)
		pdf.Cell(30, 6, c.Kind)
		pdf.Cell(40, 6, "KES "+c.Amount.StringFixed(2))
		pdf.Cell(0, 6, fmt.Sprintf("%d", c.Count))
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func (r *pdfRenderer) writeTransactions(pdf *gofpdf.Fpdf, transactions []models.Transaction) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Transactions")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.Cell(25, 6, "Date")
	pdf.Cell(20, 6, "Direction")
	pdf.Cell(55, 6, "Other Party")
	pdf.Cell(45, 6, "Category")
	pdf.Cell(0, 6, "Amount")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	for i := range transactions {
		t := &transactions[i]
		pdf.Cell(25, 6, t.TransactionDate.Format("02 Jan 06"))
		pdf.Cell(20, 6, t.Direction)
		pdf.Cell(55, 6, truncate(t.OtherParty, 32))
		pdf.Cell(45, 6, truncate(categoryName(t), 26))
		pdf.Cell(0, 6, "KES "+t.Amount.StringFixed(2))
		pdf.Ln(6)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
