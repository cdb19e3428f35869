package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yasinga/yasinga/internal/models"
)

var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrDuplicateTransactionCode = errors.New("transaction code already recorded")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrDuplicateTransactionCode
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID with its category preloaded
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	if err := r.db.Preload("Category").Where("id = ?", id).First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetByUserID retrieves a user's transactions with pagination, newest first
func (r *transactionRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("transaction_date DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByTransactionCode retrieves a transaction by its M-Pesa code
func (r *transactionRepository) GetByTransactionCode(code string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("transaction_code = ?", code).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by code: %w", err)
	}
	return &transaction, nil
}

// GetPendingByUserID retrieves a user's uncategorized transactions,
// oldest first so the review queue drains in arrival order.
func (r *transactionRepository) GetPendingByUserID(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND state = ?", userID, models.TransactionStatePending).
		Order("transaction_date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get pending transactions: %w", err)
	}
	return transactions, nil
}

// GetByDateRange retrieves transactions within [start, end] with their
// categories preloaded, newest first. Report generation reads through here.
func (r *transactionRepository) GetByDateRange(userID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ? AND transaction_date BETWEEN ? AND ?", userID, start, end).
		Order("transaction_date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// Update updates an existing transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Save(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// AssignCategory sets the category and flips the state in one update
func (r *transactionRepository) AssignCategory(id, categoryID uuid.UUID) error {
	result := r.db.Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"category_id": categoryID,
			"state":       models.TransactionStateCategorized,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to assign category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// ResetByCategory clears the category from every transaction assigned to
// it and sends them back to the pending queue. Returns how many rows moved.
func (r *transactionRepository) ResetByCategory(categoryID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Updates(map[string]interface{}{
			"category_id": nil,
			"state":       models.TransactionStatePending,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset transactions for category: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetDashboardStats aggregates a user's dashboard view. Amount totals
// cover [dayStart, dayEnd); the transaction, pending, and supplier
// counts span the user's whole history. Amounts come back as strings
// so decimal parsing stays exact.
func (r *transactionRepository) GetDashboardStats(userID uuid.UUID, dayStart, dayEnd time.Time) (*models.DashboardStats, error) {
	var directionResult struct {
		TotalSent     string
		TotalReceived string
	}
	if err := r.db.Model(&models.Transaction{}).
		Select(`
			COALESCE(SUM(CASE WHEN direction = ? THEN amount ELSE 0 END), 0) as total_sent,
			COALESCE(SUM(CASE WHEN direction = ? THEN amount ELSE 0 END), 0) as total_received`,
			models.DirectionSent, models.DirectionReceived).
		Where("user_id = ? AND transaction_date >= ? AND transaction_date < ?", userID, dayStart, dayEnd).
		Scan(&directionResult).Error; err != nil {
		return nil, fmt.Errorf("failed to get direction totals: %w", err)
	}

	var kindResult struct {
		BusinessExpenses string
		PersonalExpenses string
	}
	if err := r.db.Model(&models.Transaction{}).
		Select(`
			COALESCE(SUM(CASE WHEN categories.kind = ? THEN transactions.amount ELSE 0 END), 0) as business_expenses,
			COALESCE(SUM(CASE WHEN categories.kind = ? THEN transactions.amount ELSE 0 END), 0) as personal_expenses`,
			models.CategoryKindBusiness, models.CategoryKindPersonal).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.direction = ? AND transactions.transaction_date >= ? AND transactions.transaction_date < ?",
			userID, models.DirectionSent, dayStart, dayEnd).
		Scan(&kindResult).Error; err != nil {
		return nil, fmt.Errorf("failed to get kind totals: %w", err)
	}

	var countResult struct {
		TransactionCount int64
		PendingCount     int64
	}
	if err := r.db.Model(&models.Transaction{}).
		Select(`
			COUNT(*) as transaction_count,
			COALESCE(SUM(CASE WHEN state = ? THEN 1 ELSE 0 END), 0) as pending_count`,
			models.TransactionStatePending).
		Where("user_id = ?", userID).
		Scan(&countResult).Error; err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	var supplierCount int64
	if err := r.db.Model(&models.Supplier{}).
		Where("user_id = ?", userID).
		Count(&supplierCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count suppliers: %w", err)
	}

	stats := &models.DashboardStats{
		TransactionCount: countResult.TransactionCount,
		PendingCount:     countResult.PendingCount,
		SupplierCount:    supplierCount,
	}

	var err error
	if stats.TotalSent, err = decimal.NewFromString(directionResult.TotalSent); err != nil {
		return nil, fmt.Errorf("failed to parse total sent: %w", err)
	}
	if stats.TotalReceived, err = decimal.NewFromString(directionResult.TotalReceived); err != nil {
		return nil, fmt.Errorf("failed to parse total received: %w", err)
	}
	if stats.BusinessExpenses, err = decimal.NewFromString(kindResult.BusinessExpenses); err != nil {
		return nil, fmt.Errorf("failed to parse business expenses: %w", err)
	}
	if stats.PersonalExpenses, err = decimal.NewFromString(kindResult.PersonalExpenses); err != nil {
		return nil, fmt.Errorf("failed to parse personal expenses: %w", err)
	}

	return stats, nil
}
