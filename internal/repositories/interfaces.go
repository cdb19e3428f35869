package repositories

import (
	"time"

	"github.com/google/uuid"

	"github.com/yasinga/yasinga/internal/models"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Upsert(user *models.User) error
	Update(user *models.User) error
	ListAll() ([]*models.User, error)
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
	GetByUserIDAndKind(userID uuid.UUID, kind string) ([]models.Category, error)
	CountByUserID(userID uuid.UUID) (int64, error)
	SeedDefaults(userID uuid.UUID) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	GetByTransactionCode(code string) (*models.Transaction, error)
	GetPendingByUserID(userID uuid.UUID) ([]models.Transaction, error)
	GetByDateRange(userID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	AssignCategory(id, categoryID uuid.UUID) error
	ResetByCategory(categoryID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
	GetDashboardStats(userID uuid.UUID, dayStart, dayEnd time.Time) (*models.DashboardStats, error)
}

// SupplierRepositoryInterface defines the contract for supplier repository operations
type SupplierRepositoryInterface interface {
	Create(supplier *models.Supplier) error
	GetByID(id uuid.UUID) (*models.Supplier, error)
	GetByUserID(userID uuid.UUID) ([]models.Supplier, error)
	GetByUserIDAndName(userID uuid.UUID, name string) (*models.Supplier, error)
	CountByUserID(userID uuid.UUID) (int64, error)
	Update(supplier *models.Supplier) error
	Delete(id uuid.UUID) error
}

// SMSSettingsRepositoryInterface defines the contract for SMS settings repository operations
type SMSSettingsRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.SMSSettings, error)
	Upsert(settings *models.SMSSettings) error
}

// ReportRepositoryInterface defines the contract for expense report repository operations
type ReportRepositoryInterface interface {
	Create(report *models.ExpenseReport) error
	GetByID(id uuid.UUID) (*models.ExpenseReport, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.ExpenseReport, int64, error)
	GetLatestByUserAndWindow(userID uuid.UUID, window string) (*models.ExpenseReport, error)
	Delete(id uuid.UUID) error
}
