package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Supplier is a remembered business counterparty. Stats accumulate as
// sent transactions mention the supplier; they are advisory figures for
// the dashboard, not a source of classification.
type Supplier struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_suppliers_user_name,priority:1" json:"user_id"`
	Name              string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_suppliers_user_name,priority:2" json:"name"`
	PhoneNumber       string          `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	CategoryID        *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	TotalTransactions int             `gorm:"default:0" json:"total_transactions"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_amount"`
	LastTransactionAt *time.Time      `json:"last_transaction_at,omitempty"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return s.Validate()
}

// Validate validates the supplier fields
func (s *Supplier) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if s.Name == "" {
		return errors.New("supplier name is required")
	}
	if s.TotalAmount.IsNegative() {
		return errors.New("supplier total amount must not be negative")
	}
	return nil
}

// RecordTransaction folds one sent transaction into the running stats.
func (s *Supplier) RecordTransaction(amount decimal.Decimal, at time.Time) {
	s.TotalTransactions++
	s.TotalAmount = s.TotalAmount.Add(amount)
	s.LastTransactionAt = &at
}

// TableName returns the table name for Supplier
func (s *Supplier) TableName() string {
	return "suppliers"
}
