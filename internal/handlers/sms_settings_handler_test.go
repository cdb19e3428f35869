package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/services/service_mocks"
)

// SMSSettingsHandlerSuite defines the test suite for SMSSettingsHandler
type SMSSettingsHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockSMSSettingsServiceInterface
	handler     *SMSSettingsHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *SMSSettingsHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockSMSSettingsServiceInterface(s.ctrl)
	s.handler = NewSMSSettingsHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *SMSSettingsHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSMSSettingsHandlerSuite runs the test suite
func TestSMSSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SMSSettingsHandlerSuite))
}

func (s *SMSSettingsHandlerSuite) createContextWithAuth(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	return c, rec
}

func (s *SMSSettingsHandlerSuite) TestGetSettings() {
	settings := &models.SMSSettings{
		ID:                  uuid.New(),
		UserID:              s.testUserID,
		AutoImportEnabled:   true,
		BusinessPhoneActive: true,
	}
	s.mockService.EXPECT().GetSettings(s.testUserID).Return(settings, nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/sms-settings", nil)
	s.NoError(s.handler.GetSettings(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp models.SMSSettings
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.AutoImportEnabled)
	s.False(resp.PersonalPhoneActive)
}

func (s *SMSSettingsHandlerSuite) TestGetSettings_Unauthenticated() {
	req := httptest.NewRequest(http.MethodGet, "/api/sms-settings", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.GetSettings(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("AUTH_001", resp.Error.Code)
}

func (s *SMSSettingsHandlerSuite) TestUpdateSettings() {
	disabled := false
	personalOn := true
	reqBody := dto.UpdateSMSSettingsRequest{
		AutoImportEnabled:   &disabled,
		PersonalPhoneActive: &personalOn,
	}
	updated := &models.SMSSettings{
		ID:                  uuid.New(),
		UserID:              s.testUserID,
		AutoImportEnabled:   false,
		BusinessPhoneActive: true,
		PersonalPhoneActive: true,
	}

	s.mockService.EXPECT().UpdateSettings(s.testUserID, gomock.Any()).
		DoAndReturn(func(userID uuid.UUID, req *dto.UpdateSMSSettingsRequest) (*models.SMSSettings, error) {
			s.NotNil(req.AutoImportEnabled)
			s.False(*req.AutoImportEnabled)
			s.Nil(req.BusinessPhoneActive)
			return updated, nil
		})

	c, rec := s.createContextWithAuth(http.MethodPut, "/api/sms-settings", reqBody)
	s.NoError(s.handler.UpdateSettings(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp models.SMSSettings
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.AutoImportEnabled)
	s.True(resp.PersonalPhoneActive)
}
