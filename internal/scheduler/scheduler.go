package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionSweeper is implemented by the session use case.
type SessionSweeper interface {
	SweepExpired(now time.Time) int
}

// Scheduler runs the periodic housekeeping jobs.
type Scheduler struct {
	cron     *cron.Cron
	sweeper  SessionSweeper
	schedule string
	now      func() time.Time
	logger   *zap.Logger
}

// NewScheduler creates a scheduler that sweeps expired sessions on schedule
// (standard 5-field cron or descriptors such as "@every 5m").
func NewScheduler(schedule string, sweeper SessionSweeper, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		sweeper:  sweeper,
		schedule: schedule,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("session_sweep", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.sweepSessions); err != nil {
		s.logger.Error("failed to schedule session sweep", zap.Error(err))
		return err
	}

	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	s.logger.Info("stopping scheduler")
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out")
	}
}

func (s *Scheduler) sweepSessions() {
	removed := s.sweeper.SweepExpired(s.now())
	s.logger.Debug("session sweep finished", zap.Int("removed", removed))
}
