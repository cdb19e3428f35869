package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
)

var (
	ErrTransactionNotOwned = errors.New("transaction does not belong to user")
	ErrInvalidAmountFormat = errors.New("amount is not a valid decimal")
	ErrInvalidDateFormat   = errors.New("date is not in RFC3339 format")
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	supplierRepo    repositories.SupplierRepositoryInterface
	classifier      ClassifierServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	supplierRepo repositories.SupplierRepositoryInterface,
	classifier ClassifierServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		supplierRepo:    supplierRepo,
		classifier:      classifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateTransaction records a transaction. An explicitly supplied
// category wins outright; otherwise the classifier takes a pass and a
// match lands the transaction already categorized. Either way a miss
// leaves it pending for manual review.
func (s *transactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	start := time.Now()

	transaction, err := s.buildTransaction(userID, req)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, repositories.ErrCategoryNotFound
		}
		if err := s.verifyCategoryOwnership(userID, categoryID); err != nil {
			return nil, err
		}
		transaction.Categorize(categoryID)
	} else {
		categories, err := s.userCategories(userID)
		if err != nil {
			return nil, err
		}
		if match := s.classifier.Classify(transaction, categories); match != nil {
			transaction.Categorize(match.ID)
		}
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, err
	}

	if transaction.Direction == models.DirectionSent {
		s.updateSupplierStats(userID, transaction)
	}

	s.metrics.IncrementCounter("transactions.created", map[string]string{
		"direction": transaction.Direction,
		"state":     transaction.State,
	})
	s.metrics.RecordProcessingTime("transactions.create", time.Since(start))

	s.logger.Info("transaction recorded",
		"user_id", userID,
		"transaction_id", transaction.ID,
		"direction", transaction.Direction,
		"state", transaction.State)

	return s.transactionRepo.GetByID(transaction.ID)
}

// GetTransactions returns a page of the user's transactions, newest first
func (s *transactionService) GetTransactions(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return s.transactionRepo.GetByUserID(userID, offset, limit)
}

// GetPendingTransactions returns the uncategorized backlog, oldest first
func (s *transactionService) GetPendingTransactions(userID uuid.UUID) ([]models.Transaction, error) {
	return s.transactionRepo.GetPendingByUserID(userID)
}

// GetTransactionsByDateRange returns the user's transactions inside the window
func (s *transactionService) GetTransactionsByDateRange(userID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return s.transactionRepo.GetByDateRange(userID, start, end)
}

// UpdateTransaction updates editable fields on a transaction
func (s *transactionService) UpdateTransaction(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.ownedTransaction(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.OtherParty != nil {
		transaction.OtherParty = *req.OtherParty
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id: %w", err)
		}
		if err := s.verifyCategoryOwnership(userID, categoryID); err != nil {
			return nil, err
		}
		transaction.Categorize(categoryID)
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, err
	}

	return s.transactionRepo.GetByID(transactionID)
}

// CategorizeTransaction assigns a category to a pending or already
// categorized transaction
func (s *transactionService) CategorizeTransaction(userID, transactionID, categoryID uuid.UUID) (*models.Transaction, error) {
	if _, err := s.ownedTransaction(userID, transactionID); err != nil {
		return nil, err
	}
	if err := s.verifyCategoryOwnership(userID, categoryID); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.AssignCategory(transactionID, categoryID); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("transactions.categorized", map[string]string{
		"source": "manual",
	})

	return s.transactionRepo.GetByID(transactionID)
}

// DeleteTransaction removes a transaction owned by the user
func (s *transactionService) DeleteTransaction(userID, transactionID uuid.UUID) error {
	if _, err := s.ownedTransaction(userID, transactionID); err != nil {
		return err
	}
	return s.transactionRepo.Delete(transactionID)
}

func (s *transactionService) buildTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, ErrInvalidAmountFormat
	}

	transaction := &models.Transaction{
		UserID:            userID,
		TransactionCode:   req.TransactionCode,
		Direction:         req.Direction,
		Amount:            amount,
		OtherParty:        req.OtherParty,
		OtherPartyPhone:   req.OtherPartyPhone,
		Description:       req.Description,
		SMSContent:        req.SMSContent,
		SourcePhoneNumber: req.SourcePhoneNumber,
		State:             models.TransactionStatePending,
	}

	if req.IsFromSMS != nil {
		transaction.IsFromSMS = *req.IsFromSMS
	} else {
		transaction.IsFromSMS = true
	}

	if req.MpesaBalance != "" {
		balance, err := decimal.NewFromString(req.MpesaBalance)
		if err != nil {
			return nil, ErrInvalidAmountFormat
		}
		transaction.MpesaBalance = &balance
	}
	if req.TransactionCost != "" {
		cost, err := decimal.NewFromString(req.TransactionCost)
		if err != nil {
			return nil, ErrInvalidAmountFormat
		}
		transaction.TransactionCost = &cost
	}

	if req.TransactionDate != "" {
		date, err := time.Parse(time.RFC3339, req.TransactionDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		transaction.TransactionDate = date
	} else {
		transaction.TransactionDate = time.Now().UTC()
	}

	return transaction, nil
}

// userCategories loads the user's category set, seeding defaults for a
// brand-new user so the classifier has something to match against.
func (s *transactionService) userCategories(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}

	if _, err := s.categoryRepo.SeedDefaults(userID); err != nil {
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}
	return s.categoryRepo.GetByUserID(userID)
}

// updateSupplierStats rolls a sent transaction into the matching
// supplier's running totals. A miss is not an error; most counterparties
// are not tracked suppliers.
func (s *transactionService) updateSupplierStats(userID uuid.UUID, transaction *models.Transaction) {
	supplier, err := s.supplierRepo.GetByUserIDAndName(userID, transaction.OtherParty)
	if err != nil {
		if !errors.Is(err, repositories.ErrSupplierNotFound) {
			s.logger.Warn("supplier lookup failed",
				"user_id", userID,
				"other_party", transaction.OtherParty,
				"error", err)
		}
		return
	}

	supplier.RecordTransaction(transaction.Amount, transaction.TransactionDate)
	if err := s.supplierRepo.Update(supplier); err != nil {
		s.logger.Warn("failed to update supplier stats",
			"user_id", userID,
			"supplier_id", supplier.ID,
			"error", err)
	}
}

func (s *transactionService) ownedTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, ErrTransactionNotOwned
	}
	return transaction, nil
}

func (s *transactionService) verifyCategoryOwnership(userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category.UserID != userID {
		return ErrCategoryNotOwned
	}
	return nil
}
