package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yasinga/yasinga/internal/models"
)

var (
	ErrSMSSettingsNotFound = errors.New("sms settings not found")
)

// smsSettingsRepository implements SMSSettingsRepositoryInterface
type smsSettingsRepository struct {
	db *gorm.DB
}

// NewSMSSettingsRepository creates a new SMS settings repository
func NewSMSSettingsRepository(db *gorm.DB) SMSSettingsRepositoryInterface {
	return &smsSettingsRepository{
		db: db,
	}
}

// GetByUserID retrieves a user's SMS settings
func (r *smsSettingsRepository) GetByUserID(userID uuid.UUID) (*models.SMSSettings, error) {
	settings := &models.SMSSettings{}
	if err := r.db.Where("user_id = ?", userID).First(settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSMSSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get sms settings: %w", err)
	}
	return settings, nil
}

// Upsert writes the user's settings row, creating it on first save
func (r *smsSettingsRepository) Upsert(settings *models.SMSSettings) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"auto_import_enabled", "business_phone_active", "personal_phone_active", "updated_at",
		}),
	}).Create(settings).Error; err != nil {
		return fmt.Errorf("failed to upsert sms settings: %w", err)
	}
	return nil
}
