package services

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/yasinga/yasinga/internal/export"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories/repository_mocks"
)

// ReportServiceSuite defines the test suite for ReportServiceInterface
type ReportServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	reportRepo      *repository_mocks.MockReportRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	userRepo        *repository_mocks.MockUserRepositoryInterface
	store           *export.ArtifactStore
	storeDir        string
	metrics         *capturingRecorder
	service         *reportService
	testUser        *models.User
	testNow         time.Time
}

// SetupTest runs before each test in the suite
func (s *ReportServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reportRepo = repository_mocks.NewMockReportRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.metrics = &capturingRecorder{}

	s.storeDir = s.T().TempDir()
	store, err := export.NewArtifactStore(s.storeDir)
	s.Require().NoError(err)
	s.store = store

	s.service = NewReportService(
		s.reportRepo,
		s.transactionRepo,
		s.userRepo,
		s.store,
		s.metrics,
		slog.Default(),
	).(*reportService)

	s.testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.testNow }

	s.testUser = &models.User{
		ID:        uuid.New(),
		Email:     gofakeit.Email(),
		FirstName: "Wanjiku",
		LastName:  "Njoroge",
	}
}

// TearDownTest runs after each test in the suite
func (s *ReportServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestReportServiceSuite runs the test suite
func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func categorizedTransaction(userID uuid.UUID, direction string, amount float64, categoryName, kind string) models.Transaction {
	categoryID := uuid.New()
	return models.Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: &categoryID,
		Direction:  direction,
		Amount:     decimal.NewFromFloat(amount),
		OtherParty: gofakeit.Company(),
		State:      models.TransactionStateCategorized,
		Category: &models.Category{
			ID:   categoryID,
			Name: categoryName,
			Kind: kind,
		},
		TransactionDate: time.Now(),
	}
}

func (s *ReportServiceSuite) sampleTransactions() []models.Transaction {
	userID := s.testUser.ID
	return []models.Transaction{
		categorizedTransaction(userID, models.DirectionSent, 3000, "Supplier Payments", models.CategoryKindBusiness),
		categorizedTransaction(userID, models.DirectionSent, 2000, "Supplier Payments", models.CategoryKindBusiness),
		categorizedTransaction(userID, models.DirectionSent, 450, "Personal Food & Dining", models.CategoryKindPersonal),
		categorizedTransaction(userID, models.DirectionReceived, 8000, "Business Income", models.CategoryKindBusiness),
		{
			ID:         uuid.New(),
			UserID:     userID,
			Direction:  models.DirectionSent,
			Amount:     decimal.NewFromInt(700),
			OtherParty: "Unknown Party",
			State:      models.TransactionStatePending,
		},
	}
}

func (s *ReportServiceSuite) TestComputeSummary() {
	summary := s.service.ComputeSummary(s.sampleTransactions())

	s.True(summary.TotalSent.Equal(decimal.NewFromInt(6150)), "got %s", summary.TotalSent)
	s.True(summary.TotalReceived.Equal(decimal.NewFromInt(8000)))
	s.True(summary.BusinessTotal.Equal(decimal.NewFromInt(5000)))
	s.True(summary.PersonalTotal.Equal(decimal.NewFromInt(450)))
	s.Equal(5, summary.TransactionCount)

	s.Require().Len(summary.TopCategories, 3)
	s.Equal("Business Income", summary.TopCategories[0].Name)
	s.Equal("Supplier Payments", summary.TopCategories[1].Name)
	s.Equal(2, summary.TopCategories[1].Count)
	s.Equal("Personal Food & Dining", summary.TopCategories[2].Name)
}

func (s *ReportServiceSuite) TestComputeSummary_Empty() {
	summary := s.service.ComputeSummary(nil)

	s.True(summary.TotalSent.IsZero())
	s.True(summary.TotalReceived.IsZero())
	s.Equal(0, summary.TransactionCount)
	s.Empty(summary.TopCategories)
}

func (s *ReportServiceSuite) TestComputeSummary_TiedAmountsKeepFirstSeenOrder() {
	userID := s.testUser.ID
	transactions := []models.Transaction{
		categorizedTransaction(userID, models.DirectionSent, 100, "Zulu Wholesale", models.CategoryKindBusiness),
		categorizedTransaction(userID, models.DirectionSent, 100, "Alpha Stores", models.CategoryKindBusiness),
		categorizedTransaction(userID, models.DirectionSent, 100, "Mango Traders", models.CategoryKindBusiness),
		categorizedTransaction(userID, models.DirectionSent, 250, "Equipment & Maintenance", models.CategoryKindBusiness),
	}

	summary := s.service.ComputeSummary(transactions)

	s.Require().Len(summary.TopCategories, 4)
	s.Equal("Equipment & Maintenance", summary.TopCategories[0].Name)
	s.Equal("Zulu Wholesale", summary.TopCategories[1].Name)
	s.Equal("Alpha Stores", summary.TopCategories[2].Name)
	s.Equal("Mango Traders", summary.TopCategories[3].Name)
}

func (s *ReportServiceSuite) TestComputeSummary_CapsTopCategories() {
	var transactions []models.Transaction
	for i := 0; i < 8; i++ {
		transactions = append(transactions, categorizedTransaction(
			s.testUser.ID,
			models.DirectionSent,
			float64(1000+i),
			gofakeit.BuzzWord()+gofakeit.LetterN(4),
			models.CategoryKindBusiness,
		))
	}

	summary := s.service.ComputeSummary(transactions)
	s.Len(summary.TopCategories, topCategoryLimit)
}

func (s *ReportServiceSuite) TestGenerateReport_Weekly() {
	userID := s.testUser.ID
	transactions := s.sampleTransactions()

	s.userRepo.EXPECT().GetByID(userID).Return(s.testUser, nil)
	s.transactionRepo.EXPECT().
		GetByDateRange(userID, s.testNow.AddDate(0, 0, -7), s.testNow).
		Return(transactions, nil)
	s.reportRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(report *models.ExpenseReport) error {
		s.Equal(models.ReportWindowWeekly, report.Window)
		s.Equal(models.ReportFormatPDF, report.Format)
		s.Equal(5, report.TransactionCount)
		s.True(report.TotalSent.Equal(decimal.NewFromInt(6150)))
		return nil
	})

	report, err := s.service.GenerateReport(userID, models.ReportWindowWeekly, models.ReportFormatPDF)

	s.Require().NoError(err)
	s.NotEmpty(report.FilePath)

	data, err := os.ReadFile(filepath.Join(s.storeDir, report.FilePath))
	s.Require().NoError(err)
	s.NotEmpty(data)
	s.Equal("%PDF", string(data[:4]))
}

func (s *ReportServiceSuite) TestGenerateReport_MonthlyCSV() {
	userID := s.testUser.ID
	monthStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	s.userRepo.EXPECT().GetByID(userID).Return(s.testUser, nil)
	s.transactionRepo.EXPECT().
		GetByDateRange(userID, monthStart, s.testNow).
		Return(s.sampleTransactions(), nil)
	s.reportRepo.EXPECT().Create(gomock.Any()).Return(nil)

	report, err := s.service.GenerateReport(userID, models.ReportWindowMonthly, models.ReportFormatCSV)

	s.Require().NoError(err)
	s.Equal(monthStart, report.PeriodStart)

	data, err := os.ReadFile(filepath.Join(s.storeDir, report.FilePath))
	s.Require().NoError(err)
	s.Contains(string(data), "Total Sent,6150.00")
}

func (s *ReportServiceSuite) TestGenerateReport_XLSX() {
	userID := s.testUser.ID

	s.userRepo.EXPECT().GetByID(userID).Return(s.testUser, nil)
	s.transactionRepo.EXPECT().GetByDateRange(userID, gomock.Any(), gomock.Any()).
		Return(s.sampleTransactions(), nil)
	s.reportRepo.EXPECT().Create(gomock.Any()).Return(nil)

	report, err := s.service.GenerateReport(userID, models.ReportWindowWeekly, models.ReportFormatXLSX)

	s.Require().NoError(err)
	s.Equal("xlsx", filepath.Ext(report.FilePath)[1:])
}

func (s *ReportServiceSuite) TestGenerateReport_InvalidWindow() {
	_, err := s.service.GenerateReport(s.testUser.ID, "yearly", models.ReportFormatPDF)
	s.ErrorIs(err, models.ErrInvalidReportWindow)
}

func (s *ReportServiceSuite) TestGenerateReport_InvalidFormat() {
	_, err := s.service.GenerateReport(s.testUser.ID, models.ReportWindowWeekly, "docx")
	s.ErrorIs(err, models.ErrInvalidReportFormat)
}

func (s *ReportServiceSuite) TestGenerateReport_PersistFailureRemovesArtifact() {
	userID := s.testUser.ID

	s.userRepo.EXPECT().GetByID(userID).Return(s.testUser, nil)
	s.transactionRepo.EXPECT().GetByDateRange(userID, gomock.Any(), gomock.Any()).
		Return(s.sampleTransactions(), nil)
	s.reportRepo.EXPECT().Create(gomock.Any()).Return(gofakeit.Error())

	_, err := s.service.GenerateReport(userID, models.ReportWindowWeekly, models.ReportFormatCSV)
	s.Error(err)

	entries, readErr := os.ReadDir(filepath.Join(s.storeDir, userID.String()))
	s.NoError(readErr)
	s.Empty(entries)
}

func (s *ReportServiceSuite) TestGetReportFile() {
	userID := s.testUser.ID
	reportID := uuid.New()
	relPath, err := s.store.Save(userID, reportID, "csv", []byte("header\n"))
	s.Require().NoError(err)

	stored := &models.ExpenseReport{ID: reportID, UserID: userID, FilePath: relPath}
	s.reportRepo.EXPECT().GetByID(reportID).Return(stored, nil)

	report, fullPath, err := s.service.GetReportFile(userID, reportID)

	s.NoError(err)
	s.Equal(reportID, report.ID)
	s.FileExists(fullPath)
}

func (s *ReportServiceSuite) TestGetReportFile_MissingArtifact() {
	userID := s.testUser.ID
	reportID := uuid.New()
	stored := &models.ExpenseReport{ID: reportID, UserID: userID, FilePath: "gone/nowhere.pdf"}
	s.reportRepo.EXPECT().GetByID(reportID).Return(stored, nil)

	_, _, err := s.service.GetReportFile(userID, reportID)
	s.ErrorIs(err, export.ErrArtifactNotFound)
}

func (s *ReportServiceSuite) TestGetReportFile_NotOwned() {
	reportID := uuid.New()
	stored := &models.ExpenseReport{ID: reportID, UserID: uuid.New(), FilePath: "x.pdf"}
	s.reportRepo.EXPECT().GetByID(reportID).Return(stored, nil)

	_, _, err := s.service.GetReportFile(s.testUser.ID, reportID)
	s.ErrorIs(err, ErrReportNotOwned)
}

func (s *ReportServiceSuite) TestDeleteReport_RemovesArtifact() {
	userID := s.testUser.ID
	reportID := uuid.New()
	relPath, err := s.store.Save(userID, reportID, "pdf", []byte("%PDF-1.4"))
	s.Require().NoError(err)

	stored := &models.ExpenseReport{ID: reportID, UserID: userID, FilePath: relPath}
	s.reportRepo.EXPECT().GetByID(reportID).Return(stored, nil)
	s.reportRepo.EXPECT().Delete(reportID).Return(nil)

	s.NoError(s.service.DeleteReport(userID, reportID))
	s.NoFileExists(filepath.Join(s.storeDir, relPath))
}
