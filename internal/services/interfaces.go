package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/models"
)

// TokenServiceInterface defines session token validation operations
type TokenServiceInterface interface {
	ValidateSessionToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// ClassifierServiceInterface defines the contract for automatic
// transaction categorization
type ClassifierServiceInterface interface {
	// Classify picks a category for the transaction from the user's
	// category set, or returns nil when no category fits
	Classify(transaction *models.Transaction, categories []models.Category) *models.Category
}

// CategoryServiceInterface defines category-related business operations
type CategoryServiceInterface interface {
	ListCategories(userID uuid.UUID) ([]models.Category, error)
	CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(userID, categoryID uuid.UUID) error
}

// TransactionServiceInterface defines transaction-related business operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransactions(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	GetPendingTransactions(userID uuid.UUID) ([]models.Transaction, error)
	GetTransactionsByDateRange(userID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	UpdateTransaction(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	CategorizeTransaction(userID, transactionID, categoryID uuid.UUID) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uuid.UUID) error
}

// SupplierServiceInterface defines supplier-related business operations
type SupplierServiceInterface interface {
	ListSuppliers(userID uuid.UUID) ([]models.Supplier, error)
	CreateSupplier(userID uuid.UUID, req *dto.CreateSupplierRequest) (*models.Supplier, error)
	UpdateSupplier(userID, supplierID uuid.UUID, req *dto.UpdateSupplierRequest) (*models.Supplier, error)
}

// SMSSettingsServiceInterface defines SMS settings operations
type SMSSettingsServiceInterface interface {
	GetSettings(userID uuid.UUID) (*models.SMSSettings, error)
	UpdateSettings(userID uuid.UUID, req *dto.UpdateSMSSettingsRequest) (*models.SMSSettings, error)
}

// DashboardServiceInterface defines dashboard aggregation operations
type DashboardServiceInterface interface {
	GetStats(userID uuid.UUID) (*models.DashboardStats, error)
}

// ReportServiceInterface defines expense report operations
type ReportServiceInterface interface {
	// ComputeSummary aggregates a transaction set into report totals
	ComputeSummary(transactions []models.Transaction) *models.ReportSummary
	GenerateReport(userID uuid.UUID, window, format string) (*models.ExpenseReport, error)
	ListReports(userID uuid.UUID, offset, limit int) ([]models.ExpenseReport, int64, error)
	GetReportFile(userID, reportID uuid.UUID) (*models.ExpenseReport, string, error)
	DeleteReport(userID, reportID uuid.UUID) error
}

// MetricsRecorderInterface abstracts metrics collection so services can
// be tested without a live registry
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
