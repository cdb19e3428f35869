package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Report windows
const (
	ReportWindowWeekly  = "weekly"
	ReportWindowMonthly = "monthly"
)

// Report formats for downloadable artifacts
const (
	ReportFormatPDF  = "pdf"
	ReportFormatCSV  = "csv"
	ReportFormatXLSX = "xlsx"
)

var (
	ErrInvalidReportWindow = errors.New("invalid report window")
	ErrInvalidReportFormat = errors.New("invalid report format")
)

// CategoryTotal is one category's slice of a report: total spent and the
// number of transactions that contributed to it.
type CategoryTotal struct {
	Name   string          `json:"name"`
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// ReportSummary is the aggregate computed over a report window.
// TotalSent and TotalReceived split by direction; BusinessTotal and
// PersonalTotal cover sent transactions only, split by category kind.
type ReportSummary struct {
	TotalSent        decimal.Decimal `json:"total_sent"`
	TotalReceived    decimal.Decimal `json:"total_received"`
	BusinessTotal    decimal.Decimal `json:"business_total"`
	PersonalTotal    decimal.Decimal `json:"personal_total"`
	TransactionCount int             `json:"transaction_count"`
	TopCategories    []CategoryTotal `json:"top_categories"`
}

// ExpenseReport is a generated report artifact. Summary values are
// denormalized onto the row so listings need no recomputation.
type ExpenseReport struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Window           string          `gorm:"type:varchar(10);not null" json:"window"`
	Format           string          `gorm:"type:varchar(10);not null;default:'pdf'" json:"format"`
	PeriodStart      time.Time       `gorm:"not null" json:"period_start"`
	PeriodEnd        time.Time       `gorm:"not null" json:"period_end"`
	TotalSent        decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_sent"`
	TotalReceived    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_received"`
	BusinessTotal    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"business_total"`
	PersonalTotal    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"personal_total"`
	TransactionCount int             `gorm:"default:0" json:"transaction_count"`
	FilePath         string          `gorm:"type:varchar(512)" json:"file_path,omitempty"`
	GeneratedAt      time.Time       `gorm:"not null" json:"generated_at"`
}

// BeforeCreate hook for ExpenseReport
func (r *ExpenseReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Format == "" {
		r.Format = ReportFormatPDF
	}
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = time.Now()
	}
	return r.Validate()
}

// Validate validates the report fields
func (r *ExpenseReport) Validate() error {
	if r.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidReportWindow(r.Window) {
		return ErrInvalidReportWindow
	}
	if !IsValidReportFormat(r.Format) {
		return ErrInvalidReportFormat
	}
	if r.PeriodEnd.Before(r.PeriodStart) {
		return errors.New("report period end must not precede period start")
	}
	return nil
}

// TableName returns the table name for ExpenseReport
func (r *ExpenseReport) TableName() string {
	return "expense_reports"
}

// IsValidReportWindow checks if the report window is valid
func IsValidReportWindow(window string) bool {
	switch window {
	case ReportWindowWeekly, ReportWindowMonthly:
		return true
	default:
		return false
	}
}

// IsValidReportFormat checks if the report format is valid
func IsValidReportFormat(format string) bool {
	switch format {
	case ReportFormatPDF, ReportFormatCSV, ReportFormatXLSX:
		return true
	default:
		return false
	}
}

// ReportPeriod returns [start, end] for a window anchored at now.
// Weekly covers the trailing seven days; monthly starts on the first
// day of the previous month and runs to now.
func ReportPeriod(window string, now time.Time) (time.Time, time.Time, error) {
	switch window {
	case ReportWindowWeekly:
		return now.AddDate(0, 0, -7), now, nil
	case ReportWindowMonthly:
		start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		return start, now, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidReportWindow
	}
}
