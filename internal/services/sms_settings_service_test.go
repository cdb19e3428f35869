package services

import (
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
	"github.com/yasinga/yasinga/internal/repositories/repository_mocks"
)

// SMSSettingsServiceSuite defines the test suite for SMSSettingsServiceInterface
type SMSSettingsServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	settingsRepo *repository_mocks.MockSMSSettingsRepositoryInterface
	service      SMSSettingsServiceInterface
	testUserID   uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *SMSSettingsServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.settingsRepo = repository_mocks.NewMockSMSSettingsRepositoryInterface(s.ctrl)
	s.service = NewSMSSettingsService(s.settingsRepo, slog.Default())
	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *SMSSettingsServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSMSSettingsServiceSuite runs the test suite
func TestSMSSettingsServiceSuite(t *testing.T) {
	suite.Run(t, new(SMSSettingsServiceSuite))
}

func (s *SMSSettingsServiceSuite) TestGetSettings_FallsBackToDefaults() {
	s.settingsRepo.EXPECT().GetByUserID(s.testUserID).Return(nil, repositories.ErrSMSSettingsNotFound)

	settings, err := s.service.GetSettings(s.testUserID)

	s.NoError(err)
	s.Equal(s.testUserID, settings.UserID)
	s.True(settings.AutoImportEnabled)
	s.True(settings.BusinessPhoneActive)
	s.False(settings.PersonalPhoneActive)
	s.True(settings.SmartSupplierRecognition)
	s.False(settings.AutoCategorizeRecurring)
}

func (s *SMSSettingsServiceSuite) TestGetSettings_Existing() {
	existing := &models.SMSSettings{
		ID:                uuid.New(),
		UserID:            s.testUserID,
		AutoImportEnabled: false,
	}
	s.settingsRepo.EXPECT().GetByUserID(s.testUserID).Return(existing, nil)

	settings, err := s.service.GetSettings(s.testUserID)

	s.NoError(err)
	s.False(settings.AutoImportEnabled)
}

func (s *SMSSettingsServiceSuite) TestUpdateSettings_PartialUpdate() {
	existing := &models.SMSSettings{
		ID:                  uuid.New(),
		UserID:              s.testUserID,
		AutoImportEnabled:   true,
		BusinessPhoneActive: true,
	}
	s.settingsRepo.EXPECT().GetByUserID(s.testUserID).Return(existing, nil)
	s.settingsRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(settings *models.SMSSettings) error {
		s.False(settings.AutoImportEnabled)
		s.True(settings.BusinessPhoneActive)
		return nil
	})

	off := false
	settings, err := s.service.UpdateSettings(s.testUserID, &dto.UpdateSMSSettingsRequest{AutoImportEnabled: &off})

	s.NoError(err)
	s.False(settings.AutoImportEnabled)
}

func (s *SMSSettingsServiceSuite) TestUpdateSettings_FirstWrite() {
	s.settingsRepo.EXPECT().GetByUserID(s.testUserID).Return(nil, repositories.ErrSMSSettingsNotFound)
	s.settingsRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(settings *models.SMSSettings) error {
		s.Equal(s.testUserID, settings.UserID)
		s.True(settings.PersonalPhoneActive)
		return nil
	})

	on := true
	settings, err := s.service.UpdateSettings(s.testUserID, &dto.UpdateSMSSettingsRequest{PersonalPhoneActive: &on})

	s.NoError(err)
	s.True(settings.PersonalPhoneActive)
}

func (s *SMSSettingsServiceSuite) TestUpdateSettings_CustomKeywords() {
	existing := &models.SMSSettings{
		ID:     uuid.New(),
		UserID: s.testUserID,
	}
	s.settingsRepo.EXPECT().GetByUserID(s.testUserID).Return(existing, nil)
	s.settingsRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	keywords := "duka,wholesale,jumla"
	off := false
	settings, err := s.service.UpdateSettings(s.testUserID, &dto.UpdateSMSSettingsRequest{
		CustomKeywords:           &keywords,
		SmartSupplierRecognition: &off,
	})

	s.NoError(err)
	s.Equal(keywords, settings.CustomKeywords)
	s.False(settings.SmartSupplierRecognition)
}
