package dto

import (
	"time"

	"github.com/yasinga/yasinga/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording
// a transaction, typically parsed from an M-Pesa SMS
type CreateTransactionRequest struct {
	TransactionCode   string `json:"transaction_code" validate:"omitempty,mpesa_code"`
	CategoryID        string `json:"category_id" validate:"omitempty,uuid"`
	Direction         string `json:"direction" validate:"required,oneof=sent received"`
	Amount            string `json:"amount" validate:"required,money_amount"`
	OtherParty        string `json:"other_party" validate:"required,min=1,max=255"`
	OtherPartyPhone   string `json:"other_party_phone" validate:"omitempty,kenyan_phone"`
	Description       string `json:"description" validate:"omitempty,max=1000"`
	MpesaBalance      string `json:"mpesa_balance" validate:"omitempty,money_amount"`
	TransactionCost   string `json:"transaction_cost" validate:"omitempty,money_amount"`
	IsFromSMS         *bool  `json:"is_from_sms"`
	SMSContent        string `json:"sms_content" validate:"omitempty"`
	SourcePhoneNumber string `json:"source_phone_number" validate:"omitempty,max=20"`
	TransactionDate   string `json:"transaction_date" validate:"omitempty"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction
type UpdateTransactionRequest struct {
	OtherParty  *string `json:"other_party" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
}

// CategorizeTransactionRequest assigns a category to a transaction
type CategorizeTransactionRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

// DateRangeQuery represents the query parameters for a date-bounded listing
type DateRangeQuery struct {
	StartDate string `query:"start_date" validate:"required"`
	EndDate   string `query:"end_date" validate:"required"`
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Message     string              `json:"message,omitempty"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}

// PendingTransactionsResponse represents the uncategorized backlog
type PendingTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// DateRangeTransactionsResponse represents transactions within a window
type DateRangeTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      time.Time            `json:"end_date"`
}
