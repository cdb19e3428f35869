package repositories

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yasinga/yasinga/internal/database"
	"github.com/yasinga/yasinga/internal/models"
)

func TestSMSSettingsRepository(t *testing.T) {
	suite.Run(t, new(SMSSettingsRepositorySuite))
}

type SMSSettingsRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo SMSSettingsRepositoryInterface
	user *models.User
}

func (s *SMSSettingsRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSMSSettingsRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "shop@duka.co.ke")
}

func (s *SMSSettingsRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SMSSettingsRepositorySuite) TestSMSSettingsRepository_GetByUserID_NotFound() {
	_, err := s.repo.GetByUserID(s.user.ID)
	s.Equal(ErrSMSSettingsNotFound, err)
}

func (s *SMSSettingsRepositorySuite) TestSMSSettingsRepository_Upsert_CreatesRow() {
	settings := models.DefaultSMSSettings(s.user.ID)
	s.NoError(s.repo.Upsert(settings))

	found, err := s.repo.GetByUserID(s.user.ID)
	s.NoError(err)
	s.True(found.AutoImportEnabled)
	s.True(found.BusinessPhoneActive)
	s.False(found.PersonalPhoneActive)
}

func (s *SMSSettingsRepositorySuite) TestSMSSettingsRepository_Upsert_UpdatesExistingRow() {
	settings := models.DefaultSMSSettings(s.user.ID)
	s.NoError(s.repo.Upsert(settings))

	settings.AutoImportEnabled = false
	settings.PersonalPhoneActive = true
	s.NoError(s.repo.Upsert(settings))

	found, err := s.repo.GetByUserID(s.user.ID)
	s.NoError(err)
	s.False(found.AutoImportEnabled)
	s.True(found.PersonalPhoneActive)

	// Still a single row per user
	var count int64
	s.NoError(s.db.Model(&models.SMSSettings{}).Where("user_id = ?", s.user.ID).Count(&count).Error)
	s.Equal(int64(1), count)
}
