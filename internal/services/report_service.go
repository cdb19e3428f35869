package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yasinga/yasinga/internal/export"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
)

var ErrReportNotOwned = errors.New("report does not belong to user")

// topCategoryLimit caps how many categories a report summary carries
const topCategoryLimit = 5

// reportService implements ReportServiceInterface
type reportService struct {
	reportRepo      repositories.ReportRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	store           *export.ArtifactStore
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	store *export.ArtifactStore,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReportServiceInterface {
	return &reportService{
		reportRepo:      reportRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		store:           store,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// ComputeSummary aggregates a transaction set in a single pass.
// Direction totals cover every transaction; the business and personal
// splits cover sent transactions with a categorized kind only.
func (s *reportService) ComputeSummary(transactions []models.Transaction) *models.ReportSummary {
	summary := &models.ReportSummary{
		TransactionCount: len(transactions),
	}

	type bucket struct {
		kind      string
		amount    decimal.Decimal
		count     int
		firstSeen int
	}
	buckets := make(map[string]*bucket)

	for i := range transactions {
		t := &transactions[i]

		switch t.Direction {
		case models.DirectionSent:
			summary.TotalSent = summary.TotalSent.Add(t.Amount)
		case models.DirectionReceived:
			summary.TotalReceived = summary.TotalReceived.Add(t.Amount)
		}

		if t.Category == nil {
			continue
		}

		if t.Direction == models.DirectionSent {
			switch t.Category.Kind {
			case models.CategoryKindBusiness:
				summary.BusinessTotal = summary.BusinessTotal.Add(t.Amount)
			case models.CategoryKindPersonal:
				summary.PersonalTotal = summary.PersonalTotal.Add(t.Amount)
			}
		}

		b, ok := buckets[t.Category.Name]
		if !ok {
			b = &bucket{kind: t.Category.Kind, firstSeen: len(buckets)}
			buckets[t.Category.Name] = b
		}
		b.amount = b.amount.Add(t.Amount)
		b.count++
	}

	// Rebuild first-seen order before sorting; ranking ties keep the
	// order categories first appeared in the transaction list.
	totals := make([]models.CategoryTotal, len(buckets))
	for name, b := range buckets {
		totals[b.firstSeen] = models.CategoryTotal{
			Name:   name,
			Kind:   b.kind,
			Amount: b.amount,
			Count:  b.count,
		}
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	if len(totals) > topCategoryLimit {
		totals = totals[:topCategoryLimit]
	}
	summary.TopCategories = totals

	return summary
}

// GenerateReport builds a report over the window, renders the artifact,
// and persists both.
func (s *reportService) GenerateReport(userID uuid.UUID, window, format string) (*models.ExpenseReport, error) {
	started := s.now()

	if !models.IsValidReportWindow(window) {
		return nil, models.ErrInvalidReportWindow
	}
	renderer, err := export.NewRenderer(format)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	periodStart, periodEnd, err := models.ReportPeriod(window, started)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetByDateRange(userID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	summary := s.ComputeSummary(transactions)

	report := &models.ExpenseReport{
		ID:               uuid.New(),
		UserID:           userID,
		Window:           window,
		Format:           format,
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		TotalSent:        summary.TotalSent,
		TotalReceived:    summary.TotalReceived,
		BusinessTotal:    summary.BusinessTotal,
		PersonalTotal:    summary.PersonalTotal,
		TransactionCount: summary.TransactionCount,
		GeneratedAt:      started,
	}

	doc := &export.ReportDocument{
		OwnerName:    user.FullName(),
		OwnerEmail:   user.Email,
		Window:       window,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		GeneratedAt:  started,
		Summary:      summary,
		Transactions: transactions,
	}

	data, err := renderer.Render(doc)
	if err != nil {
		s.metrics.IncrementCounter("reports.generated", map[string]string{
			"window": window, "format": format, "outcome": "render_error",
		})
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	relPath, err := s.store.Save(userID, report.ID, renderer.Extension(), data)
	if err != nil {
		s.metrics.IncrementCounter("reports.generated", map[string]string{
			"window": window, "format": format, "outcome": "store_error",
		})
		return nil, err
	}
	report.FilePath = relPath

	if err := s.reportRepo.Create(report); err != nil {
		// Roll back the orphaned artifact so disk and rows stay in step
		if removeErr := s.store.Remove(relPath); removeErr != nil {
			s.logger.Warn("failed to remove orphaned artifact",
				"path", relPath,
				"error", removeErr)
		}
		return nil, err
	}

	s.metrics.IncrementCounter("reports.generated", map[string]string{
		"window": window, "format": format, "outcome": "success",
	})
	s.metrics.RecordProcessingTime("reports.generate", time.Since(started))

	s.logger.Info("report generated",
		"user_id", userID,
		"report_id", report.ID,
		"window", window,
		"format", format,
		"transactions", report.TransactionCount)

	return report, nil
}

// ListReports returns a page of the user's reports, newest first
func (s *reportService) ListReports(userID uuid.UUID, offset, limit int) ([]models.ExpenseReport, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return s.reportRepo.GetByUserID(userID, offset, limit)
}

// GetReportFile returns a report and the absolute path of its artifact
func (s *reportService) GetReportFile(userID, reportID uuid.UUID) (*models.ExpenseReport, string, error) {
	report, err := s.ownedReport(userID, reportID)
	if err != nil {
		return nil, "", err
	}

	fullPath, err := s.store.Resolve(report.FilePath)
	if err != nil {
		return nil, "", err
	}
	return report, fullPath, nil
}

// DeleteReport removes a report row and its artifact
func (s *reportService) DeleteReport(userID, reportID uuid.UUID) error {
	report, err := s.ownedReport(userID, reportID)
	if err != nil {
		return err
	}

	if err := s.store.Remove(report.FilePath); err != nil {
		return err
	}
	return s.reportRepo.Delete(reportID)
}

func (s *reportService) ownedReport(userID, reportID uuid.UUID) (*models.ExpenseReport, error) {
	report, err := s.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if report.UserID != userID {
		return nil, ErrReportNotOwned
	}
	return report, nil
}
