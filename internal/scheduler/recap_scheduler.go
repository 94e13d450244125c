package scheduler

import (
	"fmt"
	"time"

	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const recapCode = "MONTHLY_KAS_RECAP"

// RecapScheduler runs the monthly kas recap job
type RecapScheduler struct {
	recapService     service.RecapService
	schedulerLogRepo repository.SchedulerLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewRecapScheduler creates a new recap scheduler
func NewRecapScheduler(recapService service.RecapService, schedulerLogRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string) *RecapScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &RecapScheduler{
		recapService:     recapService,
		schedulerLogRepo: schedulerLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *RecapScheduler) Start() error {
	s.logger.Info("Starting recap scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling monthly kas recap job")
	_, err := s.cron.AddFunc(s.cronExpression, s.runMonthlyRecap)
	if err != nil {
		return fmt.Errorf("failed to schedule monthly kas recap job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Recap scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *RecapScheduler) Stop() {
	s.logger.Info("Stopping recap scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Recap scheduler stopped successfully")
}

// runMonthlyRecap is the scheduled job that publishes the kas recap
func (s *RecapScheduler) runMonthlyRecap() {
	runID := uuid.New().String()
	now := time.Now()

	s.logScheduler(runID, "START", "Starting monthly kas recap")
	s.logger.WithField("run_id", runID).Info("Starting scheduled monthly kas recap...")

	info, err := s.recapService.PublishMonthlyRecap(now)
	if err != nil {
		s.logScheduler(runID, "FAILED", fmt.Sprintf("Monthly kas recap failed: %v", err))
		s.logger.WithField("run_id", runID).WithError(err).Error("Monthly kas recap failed")
		return
	}

	s.logScheduler(runID, "SUCCESS", fmt.Sprintf("Monthly kas recap published: %s", info.Title))
	s.logger.WithField("run_id", runID).WithField("title", info.Title).Info("Monthly kas recap completed")
}

// logScheduler records a run status row, failures only logged
func (s *RecapScheduler) logScheduler(runID, status, message string) {
	entry := &models.SchedulerLog{
		Code:    recapCode,
		RunID:   runID,
		Status:  status,
		Message: message,
	}
	if err := s.schedulerLogRepo.Create(entry); err != nil {
		s.logger.WithError(err).Error("Failed to write scheduler log")
	}
}
