// Package scheduler runs periodic maintenance by enqueuing cleanup tasks on a
// cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/langschool/contentapi/internal/logger"
	"github.com/langschool/contentapi/internal/tasks"
)

// ResetTokenGrace keeps spent reset tokens around for a day before purging.
const ResetTokenGrace = 24 * time.Hour

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule checks a standard five-field cron expression.
func ValidateSchedule(schedule string) error {
	if schedule == "" {
		return errors.New("schedule is empty")
	}
	_, err := parser.Parse(schedule)
	return err
}

// NextRun returns the first activation of schedule after from.
func NextRun(schedule string, from time.Time) (time.Time, error) {
	sched, err := parser.Parse(schedule)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}

type MaintenanceConfig struct {
	Schedule           string
	AuditRetentionDays int
}

// MaintenanceScheduler enqueues audit and reset token cleanup on a schedule.
type MaintenanceScheduler struct {
	queue  tasks.TaskAdder
	config MaintenanceConfig

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
	cancel    context.CancelFunc
}

func NewMaintenanceScheduler(queue tasks.TaskAdder, cfg MaintenanceConfig) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		queue:  queue,
		config: cfg,
		cron:   cron.New(cron.WithParser(parser)),
	}
}

// Start registers the job and starts cron. The scheduler stops when ctx is done.
func (s *MaintenanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		if _, err := s.RunNow(); err != nil {
			logger.Error("maintenance: enqueue failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule maintenance job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancel = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	next, _ := NextRun(s.config.Schedule, time.Now())
	logger.Info("maintenance scheduler started", "schedule", s.config.Schedule, "next_run", next)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running job and stops the scheduler.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)

	s.isRunning = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	logger.Info("maintenance scheduler stopped")
}

// RunNow enqueues the cleanup tasks immediately and returns their task ids.
func (s *MaintenanceScheduler) RunNow() ([]string, error) {
	ids, err := s.queue.Add(
		tasks.CleanupAuditEventsTask{RetentionDays: s.config.AuditRetentionDays},
		tasks.CleanupResetTokensTask{Grace: ResetTokenGrace},
	).Save()
	if err != nil {
		return nil, fmt.Errorf("enqueue maintenance tasks: %w", err)
	}
	logger.Info("maintenance tasks enqueued", "ids", ids)
	return ids, nil
}

func (s *MaintenanceScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the job fires next, or nil when stopped.
func (s *MaintenanceScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	entry := s.cron.Entry(s.entryID)
	if !entry.Valid() {
		return nil
	}
	t := entry.Next
	return &t
}
