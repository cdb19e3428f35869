package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yasinga/yasinga/internal/config"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
	"github.com/yasinga/yasinga/internal/services"
)

// Scheduler periodically generates weekly and monthly reports for every
// known user. Each sweep checks the last generated report per window;
// failures for one user never block the rest of the batch.
type Scheduler struct {
	userRepo   repositories.UserRepositoryInterface
	reportRepo repositories.ReportRepositoryInterface
	reports    services.ReportServiceInterface
	metrics    services.MetricsRecorderInterface
	logger     *slog.Logger
	cfg        config.SchedulerConfig
	now        func() time.Time
}

// New creates a report scheduler
func New(
	userRepo repositories.UserRepositoryInterface,
	reportRepo repositories.ReportRepositoryInterface,
	reports services.ReportServiceInterface,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
	cfg config.SchedulerConfig,
) *Scheduler {
	return &Scheduler{
		userRepo:   userRepo,
		reportRepo: reportRepo,
		reports:    reports,
		metrics:    metrics,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Run executes a sweep immediately, then on every check interval tick
// until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("report scheduler started",
		"check_interval", s.cfg.CheckInterval,
		"weekly_interval", s.cfg.WeeklyInterval,
		"monthly_interval", s.cfg.MonthlyInterval,
		"max_concurrent", s.cfg.MaxConcurrent,
	)

	if _, err := s.Sweep(ctx); err != nil {
		s.logger.Error("initial report sweep failed", "error", err)
	}

	ticker := time.NewTicker(s.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("report scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error("report sweep failed", "error", err)
			}
		}
	}
}

// Sweep generates all due reports across users and returns how many were
// produced. Listing users is the only failure that aborts a sweep.
func (s *Scheduler) Sweep(ctx context.Context) (int, error) {
	start := s.now()

	users, err := s.userRepo.ListAll()
	if err != nil {
		return 0, fmt.Errorf("failed to list users for report sweep: %w", err)
	}

	var generated int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrent)

	for _, user := range users {
		user := user
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			atomic.AddInt64(&generated, int64(s.processUser(user)))
			return nil
		})
	}

	// processUser never returns an error, so Wait only ends the batch
	_ = g.Wait()

	s.metrics.RecordProcessingTime("scheduler.sweep", s.now().Sub(start))
	s.logger.Info("report sweep complete",
		"users", len(users),
		"reports_generated", atomic.LoadInt64(&generated),
		"duration", s.now().Sub(start),
	)

	return int(atomic.LoadInt64(&generated)), nil
}

// processUser generates every due report window for one user and returns
// the number produced. Errors are logged and counted, not propagated.
func (s *Scheduler) processUser(user *models.User) int {
	windows := []struct {
		name     string
		interval time.Duration
	}{
		{models.ReportWindowWeekly, s.cfg.WeeklyInterval},
		{models.ReportWindowMonthly, s.cfg.MonthlyInterval},
	}

	generated := 0
	for _, w := range windows {
		due, err := s.windowDue(user.ID, w.name, w.interval)
		if err != nil {
			s.logger.Error("failed to check report dueness",
				"user_id", user.ID.String(),
				"window", w.name,
				"error", err,
			)
			continue
		}
		if !due {
			continue
		}

		report, err := s.reports.GenerateReport(user.ID, w.name, models.ReportFormatPDF)
		if err != nil {
			s.metrics.IncrementCounter("scheduler.report_run", map[string]string{
				"window":  w.name,
				"outcome": "error",
			})
			s.logger.Error("scheduled report generation failed",
				"user_id", user.ID.String(),
				"window", w.name,
				"error", err,
			)
			continue
		}

		generated++
		s.metrics.IncrementCounter("scheduler.report_run", map[string]string{
			"window":  w.name,
			"outcome": "success",
		})
		s.logger.Info("scheduled report generated",
			"user_id", user.ID.String(),
			"window", w.name,
			"report_id", report.ID.String(),
		)
	}

	return generated
}

// windowDue reports whether the interval has elapsed since the user's last
// report for the window. A user with no reports is always due.
func (s *Scheduler) windowDue(userID uuid.UUID, window string, interval time.Duration) (bool, error) {
	latest, err := s.reportRepo.GetLatestByUserAndWindow(userID, window)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return true, nil
		}
		return false, err
	}

	return s.now().Sub(latest.GeneratedAt) >= interval, nil
}
