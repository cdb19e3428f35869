package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	transactionsSheet = "Transactions"
)

// xlsxRenderer renders a report as a two-sheet Excel workbook
type xlsxRenderer struct{}

func (r *xlsxRenderer) Extension() string {
	return "xlsx"
}

func (r *xlsxRenderer) Render(doc *ReportDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := r.writeSummary(f, doc); err != nil {
		return nil, err
	}
	if err := r.writeTransactions(f, doc); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *xlsxRenderer) writeSummary(f *excelize.File, doc *ReportDocument) error {
	rows := [][]interface{}{
		{"Owner", doc.OwnerName},
		{"Window", doc.Window},
		{"Period Start", doc.PeriodStart.Format("2006-01-02")},
		{"Period End", doc.PeriodEnd.Format("2006-01-02")},
		{"Total Sent", doc.Summary.TotalSent.StringFixed(2)},
		{"Total Received", doc.Summary.TotalReceived.StringFixed(2)},
		{"Business Expenses", doc.Summary.BusinessTotal.StringFixed(2)},
		{"Personal Expenses", doc.Summary.PersonalTotal.StringFixed(2)},
		{"Transaction Count", doc.Summary.TransactionCount},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address summary row: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	offset := len(rows) + 2
	header := []interface{}{"Category", "Kind", "Amount", "Count"}
	cell, err := excelize.CoordinatesToCellName(1, offset)
	if err != nil {
		return fmt.Errorf("failed to address category header: %w", err)
	}
	if err := f.SetSheetRow(summarySheet, cell, &header); err != nil {
		return fmt.Errorf("failed to write category header: %w", err)
	}
	for i, c := range doc.Summary.TopCategories {
		row := []interface{}{c.Name, c.Kind, c.Amount.StringFixed(2), c.Count}
		cell, err := excelize.CoordinatesToCellName(1, offset+1+i)
		if err != nil {
			return fmt.Errorf("failed to address category row: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write category row: %w", err)
		}
	}
	return nil
}

func (r *xlsxRenderer) writeTransactions(f *excelize.File, doc *ReportDocument) error {
	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return fmt.Errorf("failed to create transactions sheet: %w", err)
	}

	header := []interface{}{"Date", "Direction", "Other Party", "Category", "Amount", "Description", "State"}
	if err := f.SetSheetRow(transactionsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write transactions header: %w", err)
	}

	for i := range doc.Transactions {
		t := &doc.Transactions[i]
		row := []interface{}{
			t.TransactionDate.Format("2006-01-02 15:04"),
			t.Direction,
			t.OtherParty,
			categoryName(t),
			t.Amount.StringFixed(2),
			t.Description,
			t.State,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address transaction row: %w", err)
		}
		if err := f.SetSheetRow(transactionsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write transaction row: %w", err)
		}
	}
	return nil
}
