package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yasinga/yasinga/internal/models"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

// reportRepository implements ReportRepositoryInterface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &reportRepository{
		db: db,
	}
}

// Create creates a new expense report row
func (r *reportRepository) Create(report *models.ExpenseReport) error {
	if err := r.db.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by ID
func (r *reportRepository) GetByID(id uuid.UUID) (*models.ExpenseReport, error) {
	report := &models.ExpenseReport{}
	if err := r.db.Where("id = ?", id).First(report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// GetByUserID retrieves a user's reports with pagination, newest first
func (r *reportRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.ExpenseReport, int64, error) {
	var reports []models.ExpenseReport
	var total int64

	if err := r.db.Model(&models.ExpenseReport{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("generated_at DESC").
		Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get reports: %w", err)
	}

	return reports, total, nil
}

// GetLatestByUserAndWindow retrieves the user's most recent report for a
// window. Used by the scheduler to decide whether a new run is due.
func (r *reportRepository) GetLatestByUserAndWindow(userID uuid.UUID, window string) (*models.ExpenseReport, error) {
	report := &models.ExpenseReport{}
	// window is reserved in postgres, so it stays quoted
	if err := r.db.Where(`user_id = ? AND "window" = ?`, userID, window).
		Order("generated_at DESC").
		First(report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get latest report: %w", err)
	}
	return report, nil
}

// Delete removes a report row
func (r *reportRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.ExpenseReport{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
