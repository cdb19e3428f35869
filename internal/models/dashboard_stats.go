package models

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate view served on the dashboard:
// month-to-date totals by direction plus the pending backlog.
type DashboardStats struct {
	TotalSent        decimal.Decimal `json:"total_sent"`
	TotalReceived    decimal.Decimal `json:"total_received"`
	BusinessExpenses decimal.Decimal `json:"business_expenses"`
	PersonalExpenses decimal.Decimal `json:"personal_expenses"`
	TransactionCount int64           `json:"transaction_count"`
	PendingCount     int64           `json:"pending_count"`
	SupplierCount    int64           `json:"supplier_count"`
}
