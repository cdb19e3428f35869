package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/export"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/services"
	"github.com/yasinga/yasinga/internal/services/service_mocks"
)

// ReportHandlerSuite defines the test suite for ReportHandler
type ReportHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockReportServiceInterface
	handler     *ReportHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *ReportHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.handler = NewReportHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *ReportHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestReportHandlerSuite runs the test suite
func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerSuite))
}

func (s *ReportHandlerSuite) createContextWithAuth(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	return c, rec
}

func (s *ReportHandlerSuite) TestGenerateReport() {
	generated := &models.ExpenseReport{
		ID:          uuid.New(),
		UserID:      s.testUserID,
		Window:      models.ReportWindowWeekly,
		Format:      models.ReportFormatPDF,
		PeriodStart: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	s.mockService.EXPECT().
		GenerateReport(s.testUserID, models.ReportWindowWeekly, models.ReportFormatPDF).
		Return(generated, nil)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/reports/weekly",
		dto.GenerateReportRequest{Format: models.ReportFormatPDF})
	c.SetParamNames("window")
	c.SetParamValues(models.ReportWindowWeekly)

	s.NoError(s.handler.GenerateReport(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.ReportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.ReportWindowWeekly, resp.Report.Window)
}

func (s *ReportHandlerSuite) TestGenerateReport_DefaultsToPDF() {
	generated := &models.ExpenseReport{
		ID:     uuid.New(),
		UserID: s.testUserID,
		Window: models.ReportWindowMonthly,
		Format: models.ReportFormatPDF,
	}
	s.mockService.EXPECT().
		GenerateReport(s.testUserID, models.ReportWindowMonthly, models.ReportFormatPDF).
		Return(generated, nil)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/reports/monthly",
		dto.GenerateReportRequest{})
	c.SetParamNames("window")
	c.SetParamValues(models.ReportWindowMonthly)

	s.NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ReportHandlerSuite) TestGenerateReport_InvalidWindow() {
	s.mockService.EXPECT().
		GenerateReport(s.testUserID, "quarterly", models.ReportFormatPDF).
		Return(nil, models.ErrInvalidReportWindow)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/reports/quarterly",
		dto.GenerateReportRequest{})
	c.SetParamNames("window")
	c.SetParamValues("quarterly")

	s.NoError(s.handler.GenerateReport(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("REPORT_002", resp.Error.Code)
}

func (s *ReportHandlerSuite) TestGenerateReport_InvalidFormat() {
	c, _ := s.createContextWithAuth(http.MethodPost, "/api/reports/weekly",
		dto.GenerateReportRequest{Format: "docx"})
	c.SetParamNames("window")
	c.SetParamValues(models.ReportWindowWeekly)

	s.Error(s.handler.GenerateReport(c))
}

func (s *ReportHandlerSuite) TestListReports() {
	reports := []models.ExpenseReport{
		{ID: uuid.New(), UserID: s.testUserID, Window: models.ReportWindowWeekly},
		{ID: uuid.New(), UserID: s.testUserID, Window: models.ReportWindowMonthly},
	}
	s.mockService.EXPECT().ListReports(s.testUserID, 0, 50).Return(reports, int64(2), nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/reports", nil)
	s.NoError(s.handler.ListReports(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.ReportListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(2), resp.Total)
	s.Len(resp.Reports, 2)
}

func (s *ReportHandlerSuite) TestDownloadReport() {
	reportID := uuid.New()
	artifactPath := filepath.Join(s.T().TempDir(), reportID.String()+".pdf")
	s.Require().NoError(os.WriteFile(artifactPath, []byte("%PDF-1.4 test"), 0o644))

	report := &models.ExpenseReport{
		ID:        reportID,
		UserID:    s.testUserID,
		Window:    models.ReportWindowWeekly,
		PeriodEnd: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	s.mockService.EXPECT().GetReportFile(s.testUserID, reportID).
		Return(report, artifactPath, nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/reports/"+reportID.String()+"/download", nil)
	c.SetParamNames("id")
	c.SetParamValues(reportID.String())

	s.NoError(s.handler.DownloadReport(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "weekly-report-2025-03-15.pdf")
	s.Equal("%PDF-1.4 test", rec.Body.String())
}

func (s *ReportHandlerSuite) TestDownloadReport_ArtifactMissing() {
	reportID := uuid.New()
	s.mockService.EXPECT().GetReportFile(s.testUserID, reportID).
		Return(nil, "", export.ErrArtifactNotFound)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/reports/"+reportID.String()+"/download", nil)
	c.SetParamNames("id")
	c.SetParamValues(reportID.String())

	s.NoError(s.handler.DownloadReport(c))

	s.Equal(http.StatusNotFound, rec.Code)
	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("REPORT_004", resp.Error.Code)
}

func (s *ReportHandlerSuite) TestDownloadReport_NotOwned() {
	reportID := uuid.New()
	s.mockService.EXPECT().GetReportFile(s.testUserID, reportID).
		Return(nil, "", services.ErrReportNotOwned)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/reports/"+reportID.String()+"/download", nil)
	c.SetParamNames("id")
	c.SetParamValues(reportID.String())

	s.NoError(s.handler.DownloadReport(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ReportHandlerSuite) TestDeleteReport() {
	reportID := uuid.New()
	s.mockService.EXPECT().DeleteReport(s.testUserID, reportID).Return(nil)

	c, rec := s.createContextWithAuth(http.MethodDelete, "/api/reports/"+reportID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(reportID.String())

	s.NoError(s.handler.DeleteReport(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ReportHandlerSuite) TestDeleteReport_MalformedID() {
	c, rec := s.createContextWithAuth(http.MethodDelete, "/api/reports/not-a-uuid", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.DeleteReport(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
