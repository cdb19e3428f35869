package dto

import (
	"github.com/yasinga/yasinga/internal/models"
)

// Report Request DTOs

// GenerateReportRequest represents the request payload for generating a report
type GenerateReportRequest struct {
	Format string `json:"format" validate:"omitempty,oneof=pdf csv xlsx"`
}

// Report Response DTOs

// ReportResponse represents a single generated report in API responses
type ReportResponse struct {
	Report  *models.ExpenseReport `json:"report"`
	Message string                `json:"message,omitempty"`
}

// ReportListResponse represents a paginated list of generated reports
type ReportListResponse struct {
	Reports []models.ExpenseReport `json:"reports"`
	Total   int64                  `json:"total"`
	Offset  int                    `json:"offset"`
	Limit   int                    `json:"limit"`
}
