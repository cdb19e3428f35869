package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// csvRenderer renders a report as a flat CSV of its transactions,
// prefixed by summary rows for spreadsheet-free consumers.
type csvRenderer struct{}

func (r *csvRenderer) Extension() string {
	return "csv"
}

func (r *csvRenderer) Render(doc *ReportDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	summaryRows := [][]string{
		{"Report Window", doc.Window},
		{"Period Start", doc.PeriodStart.Format(time.RFC3339)},
		{"Period End", doc.PeriodEnd.Format(time.RFC3339)},
		{"Total Sent", doc.Summary.TotalSent.StringFixed(2)},
		{"Total Received", doc.Summary.TotalReceived.StringFixed(2)},
		{"Business Expenses", doc.Summary.BusinessTotal.StringFixed(2)},
		{"Personal Expenses", doc.Summary.PersonalTotal.StringFixed(2)},
		{"Transaction Count", strconv.Itoa(doc.Summary.TransactionCount)},
		{},
	}
	for _, row := range summaryRows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv summary: %w", err)
		}
	}

	header := []string{"date", "direction", "other_party", "category", "amount", "description", "state"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range doc.Transactions {
		t := &doc.Transactions[i]
		record := []string{
			t.TransactionDate.Format(time.RFC3339),
			t.Direction,
			t.OtherParty,
			categoryName(t),
			t.Amount.StringFixed(2),
			t.Description,
			t.State,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
