package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction directions: money leaving the user or arriving.
const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// Transaction states. A transaction is pending until a category is assigned,
// either by the classifier or by the user. Categorized implies a non-null
// category ID; the Validate method keeps the pair consistent.
const (
	TransactionStatePending     = "pending"
	TransactionStateCategorized = "categorized"
)

var (
	ErrInvalidDirection        = errors.New("invalid transaction direction")
	ErrInvalidTransactionState = errors.New("invalid transaction state")
	ErrNegativeAmount          = errors.New("transaction amount must not be negative")
	ErrCategorizedWithoutID    = errors.New("categorized transaction requires a category")
)

// Transaction represents a single M-Pesa payment event. Direction, amount
// and counterparty are immutable facts of the payment once created; only
// the category assignment may change afterwards.
type Transaction struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID        *uuid.UUID       `gorm:"type:uuid;index" json:"category_id,omitempty"`
	TransactionCode   string           `gorm:"type:varchar(20);uniqueIndex" json:"transaction_code,omitempty"`
	Direction         string           `gorm:"type:varchar(10);not null" json:"direction"`
	Amount            decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"amount"`
	OtherParty        string           `gorm:"type:varchar(255);not null" json:"other_party"`
	OtherPartyPhone   string           `gorm:"type:varchar(20)" json:"other_party_phone,omitempty"`
	Description       string           `gorm:"type:text" json:"description,omitempty"`
	MpesaBalance      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"mpesa_balance,omitempty"`
	TransactionCost   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"transaction_cost,omitempty"`
	IsFromSMS         bool             `gorm:"default:true" json:"is_from_sms"`
	SMSContent        string           `gorm:"type:text" json:"sms_content,omitempty"`
	SourcePhoneNumber string           `gorm:"type:varchar(20)" json:"source_phone_number,omitempty"`
	State             string           `gorm:"type:varchar(20);not null;default:'pending';index" json:"state"`
	TransactionDate   time.Time        `gorm:"not null;index" json:"transaction_date"`
	CreatedAt         time.Time        `gorm:"not null" json:"created_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.State == "" {
		t.State = TransactionStatePending
	}
	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now()
	}
	return t.Validate()
}

// BeforeUpdate hook for Transaction. Column-level updates run this hook
// on a zero receiver, so validation only applies to full-record saves.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	if t.UserID == uuid.Nil {
		return nil
	}
	return t.Validate()
}

// Validate validates the transaction fields and the state/category pair.
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidDirection(t.Direction) {
		return ErrInvalidDirection
	}
	if !IsValidTransactionState(t.State) {
		return ErrInvalidTransactionState
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if t.OtherParty == "" {
		return errors.New("other party is required")
	}
	if t.State == TransactionStateCategorized && t.CategoryID == nil {
		return ErrCategorizedWithoutID
	}
	return nil
}

// IsPending returns true while the transaction awaits categorization
func (t *Transaction) IsPending() bool {
	return t.State == TransactionStatePending
}

// Categorize assigns a category and moves the transaction out of the
// pending state. The transition happens at most once under normal flow;
// re-categorization by a user swaps the category but keeps the state.
func (t *Transaction) Categorize(categoryID uuid.UUID) {
	t.CategoryID = &categoryID
	t.State = TransactionStateCategorized
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidDirection checks if the transaction direction is valid
func IsValidDirection(direction string) bool {
	switch direction {
	case DirectionSent, DirectionReceived:
		return true
	default:
		return false
	}
}

// IsValidTransactionState checks if the transaction state is valid
func IsValidTransactionState(state string) bool {
	switch state {
	case TransactionStatePending, TransactionStateCategorized:
		return true
	default:
		return false
	}
}
