package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SMSSettings controls SMS ingestion for one user. Each user has at most
// one row; reads fall back to DefaultSMSSettings when none exists yet.
type SMSSettings struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID                   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	AutoImportEnabled        bool       `gorm:"default:true" json:"auto_import_enabled"`
	BusinessPhoneActive      bool       `gorm:"default:true" json:"business_phone_active"`
	PersonalPhoneActive      bool       `gorm:"default:false" json:"personal_phone_active"`
	SmartSupplierRecognition bool       `gorm:"default:true" json:"smart_supplier_recognition"`
	AutoCategorizeRecurring  bool       `gorm:"default:false" json:"auto_categorize_recurring"`
	CustomKeywords           string     `gorm:"type:text" json:"custom_keywords,omitempty"`
	LastSyncAt               *time.Time `json:"last_sync_at,omitempty"`
	UpdatedAt                time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for SMSSettings
func (s *SMSSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return s.Validate()
}

// BeforeUpdate hook for SMSSettings
func (s *SMSSettings) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return s.Validate()
}

// Validate validates the settings fields
func (s *SMSSettings) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	return nil
}

// TableName returns the table name for SMSSettings
func (s *SMSSettings) TableName() string {
	return "sms_settings"
}

// DefaultSMSSettings returns the settings served before a user has
// persisted any preference.
func DefaultSMSSettings(userID uuid.UUID) *SMSSettings {
	return &SMSSettings{
		UserID:                   userID,
		AutoImportEnabled:        true,
		BusinessPhoneActive:      true,
		PersonalPhoneActive:      false,
		SmartSupplierRecognition: true,
		AutoCategorizeRecurring:  false,
	}
}
