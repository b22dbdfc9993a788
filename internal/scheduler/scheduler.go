// Package scheduler runs the periodic retirement sweep of stale postings.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobhunt/internal/domain/job"

	"github.com/robfig/cron/v3"
)

type retirer interface {
	RetireStale(ctx context.Context) ([]job.Posting, error)
}

// Scheduler wraps robfig/cron and owns the retirement job.
type Scheduler struct {
	cron     *cron.Cron
	retirer  retirer
	schedule string
	timeout  time.Duration
	logger   *log.Logger
}

func New(retirer retirer, schedule string, logger *log.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		retirer:  retirer,
		schedule: schedule,
		timeout:  2 * time.Minute,
		logger:   logger,
	}
}

// Start registers the sweep and starts the cron loop. The first sweep runs
// on the first tick, not immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logf("[scheduler] Cron started, schedule: %s", s.schedule)
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logf("[scheduler] Cron stopped")
}

func (s *Scheduler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	retired, err := s.retirer.RetireStale(runCtx)
	if err != nil {
		s.logf("[scheduler] Retire sweep error: %v", err)
		return
	}
	s.logf("[scheduler] Retire sweep complete, retired=%d", len(retired))
}

func (s *Scheduler) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
