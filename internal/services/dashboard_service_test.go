package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories/repository_mocks"
)

func TestDashboardService_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactionRepo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	service := NewDashboardService(transactionRepo)
	userID := uuid.New()

	expected := &models.DashboardStats{
		TotalSent:        decimal.NewFromInt(3650),
		TotalReceived:    decimal.NewFromInt(8000),
		TransactionCount: 4,
		PendingCount:     1,
	}

	transactionRepo.EXPECT().GetDashboardStats(userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id uuid.UUID, dayStart, dayEnd time.Time) (*models.DashboardStats, error) {
			now := time.Now().UTC()
			assert.Equal(t, now.Year(), dayStart.Year())
			assert.Equal(t, now.YearDay(), dayStart.YearDay())
			assert.Zero(t, dayStart.Hour())
			assert.Equal(t, 24*time.Hour, dayEnd.Sub(dayStart))
			return expected, nil
		})

	stats, err := service.GetStats(userID)

	require.NoError(t, err)
	assert.True(t, stats.TotalSent.Equal(decimal.NewFromInt(3650)))
	assert.Equal(t, int64(1), stats.PendingCount)
}
