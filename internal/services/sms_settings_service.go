package services

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
)

// smsSettingsService implements SMSSettingsServiceInterface
type smsSettingsService struct {
	settingsRepo repositories.SMSSettingsRepositoryInterface
	logger       *slog.Logger
}

// NewSMSSettingsService creates a new SMS settings service
func NewSMSSettingsService(
	settingsRepo repositories.SMSSettingsRepositoryInterface,
	logger *slog.Logger,
) SMSSettingsServiceInterface {
	return &smsSettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings returns the user's SMS import settings, falling back to
// the defaults for users who have never saved any.
func (s *smsSettingsService) GetSettings(userID uuid.UUID) (*models.SMSSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSMSSettingsNotFound) {
			return models.DefaultSMSSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies partial updates on top of the user's current
// settings and persists the result.
func (s *smsSettingsService) UpdateSettings(userID uuid.UUID, req *dto.UpdateSMSSettingsRequest) (*models.SMSSettings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	if req.AutoImportEnabled != nil {
		settings.AutoImportEnabled = *req.AutoImportEnabled
	}
	if req.BusinessPhoneActive != nil {
		settings.BusinessPhoneActive = *req.BusinessPhoneActive
	}
	if req.PersonalPhoneActive != nil {
		settings.PersonalPhoneActive = *req.PersonalPhoneActive
	}
	if req.SmartSupplierRecognition != nil {
		settings.SmartSupplierRecognition = *req.SmartSupplierRecognition
	}
	if req.AutoCategorizeRecurring != nil {
		settings.AutoCategorizeRecurring = *req.AutoCategorizeRecurring
	}
	if req.CustomKeywords != nil {
		settings.CustomKeywords = *req.CustomKeywords
	}

	if err := s.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}

	s.logger.Info("sms settings updated",
		"user_id", userID,
		"auto_import", settings.AutoImportEnabled)

	return settings, nil
}
