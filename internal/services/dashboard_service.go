package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
)

// dashboardService implements DashboardServiceInterface
type dashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(transactionRepo repositories.TransactionRepositoryInterface) DashboardServiceInterface {
	return &dashboardService{transactionRepo: transactionRepo}
}

// GetStats aggregates the user's dashboard view: today's totals by
// direction and kind, plus the all-time transaction and pending counts.
func (s *dashboardService) GetStats(userID uuid.UUID) (*models.DashboardStats, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.transactionRepo.GetDashboardStats(userID, dayStart, dayStart.Add(24*time.Hour))
}
