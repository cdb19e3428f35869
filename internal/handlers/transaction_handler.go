package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/errors"
	"github.com/yasinga/yasinga/internal/repositories"
	"github.com/yasinga/yasinga/internal/services"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a transaction, typically from a parsed M-Pesa SMS
// @Summary Record transaction
// @Description Records a transaction and auto-categorizes it when a rule matches
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Recorded transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_004 - Duplicate transaction code"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidAmountFormat):
			return SendError(c, errors.TransactionInvalidAmount)
		case stderrors.Is(err, services.ErrInvalidDateFormat):
			return SendError(c, errors.ValidationInvalidDate)
		case stderrors.Is(err, repositories.ErrDuplicateTransactionCode):
			return SendError(c, errors.TransactionDuplicateCode)
		case stderrors.Is(err, repositories.ErrCategoryNotFound),
			stderrors.Is(err, services.ErrCategoryNotOwned):
			return SendError(c, errors.CategoryNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{Transaction: transaction})
}

// ListTransactions returns a page of the user's transactions
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Results offset" default(0)
// @Param limit query int false "Results limit (max 200)" default(50)
// @Success 200 {object} dto.TransactionListResponse "Transaction page"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	transactions, total, err := h.transactionService.GetTransactions(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	})
}

// ListPendingTransactions returns the uncategorized backlog, oldest first
// @Summary List pending transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.PendingTransactionsResponse "Pending transactions"
// @Router /transactions/pending [get]
func (h *TransactionHandler) ListPendingTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactions, err := h.transactionService.GetPendingTransactions(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PendingTransactionsResponse{
		Transactions: transactions,
		Count:        len(transactions),
	})
}

// ListTransactionsByDateRange returns transactions inside a window
// @Summary List transactions by date range
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param start_date query string true "Window start (RFC3339)"
// @Param end_date query string true "Window end (RFC3339)"
// @Success 200 {object} dto.DateRangeTransactionsResponse "Transactions in the window"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date"
// @Router /transactions/range [get]
func (h *TransactionHandler) ListTransactionsByDateRange(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return err
	}

	start, err := time.Parse(time.RFC3339, query.StartDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start_date must be RFC3339"))
	}
	end, err := time.Parse(time.RFC3339, query.EndDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end_date must be RFC3339"))
	}
	if end.Before(start) {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("end_date precedes start_date"))
	}

	transactions, err := h.transactionService.GetTransactionsByDateRange(userID, start, end)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DateRangeTransactionsResponse{
		Transactions: transactions,
		StartDate:    start,
		EndDate:      end,
	})
}

// UpdateTransaction updates editable fields on a transaction
// @Summary Update transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, transactionID, &req)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: transaction})
}

// CategorizeTransaction assigns a category to a transaction
// @Summary Categorize transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.CategorizeTransactionRequest true "Category assignment"
// @Success 200 {object} dto.TransactionResponse "Categorized transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id}/categorize [post]
func (h *TransactionHandler) CategorizeTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	var req dto.CategorizeTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	transaction, err := h.transactionService.CategorizeTransaction(userID, transactionID, categoryID)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{
		Transaction: transaction,
		Message:     "transaction categorized",
	})
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204 "Transaction deleted"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TransactionHandler) mapTransactionError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrTransactionNotFound),
		stderrors.Is(err, services.ErrTransactionNotOwned):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, repositories.ErrCategoryNotFound),
		stderrors.Is(err, services.ErrCategoryNotOwned):
		return SendError(c, errors.CategoryNotFound)
	default:
		return SendSystemError(c, err)
	}
}
