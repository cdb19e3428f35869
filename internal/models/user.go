package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an application user provisioned from the external auth
// provider. The ID is the provider's subject claim, so users are upserted
// rather than registered.
type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName           string    `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName            string    `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	ProfileImageURL     string    `gorm:"type:varchar(512)" json:"profile_image_url,omitempty"`
	BusinessPhoneNumber string    `gorm:"type:varchar(20)" json:"business_phone_number,omitempty"`
	PersonalPhoneNumber string    `gorm:"type:varchar(20)" json:"personal_phone_number,omitempty"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return u.Validate()
}

// BeforeUpdate hook for User
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("user email is required")
	}
	return nil
}

// FullName returns the user's display name, falling back to the email
// when no name was provided by the auth provider.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
