package job

import (
	"context"
	"log"
	"time"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/repository"
)

const retireLockKey = "jobs:retire:lock"

type retireLock interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

// RetireService clears the active flag of postings older than MaxAge. A
// Redis lock keeps concurrent instances from running the same sweep.
type RetireService struct {
	repo   repository.JobRepository
	lock   retireLock
	logger *log.Logger
	maxAge time.Duration
	now    func() time.Time
}

func NewRetireService(repo repository.JobRepository, lock retireLock, logger *log.Logger, afterDays int) *RetireService {
	return &RetireService{
		repo:   repo,
		lock:   lock,
		logger: logger,
		maxAge: time.Duration(afterDays) * 24 * time.Hour,
		now:    time.Now,
	}
}

func (s *RetireService) Enabled() bool {
	return s != nil && s.repo != nil && s.maxAge > 0
}

func (s *RetireService) MaxAge() time.Duration {
	if s == nil {
		return 0
	}
	return s.maxAge
}

func (s *RetireService) RetireStale(ctx context.Context, maxAge time.Duration) ([]job.Posting, error) {
	if s == nil || s.repo == nil || maxAge <= 0 {
		return nil, nil
	}

	if s.lock != nil {
		ok, err := s.lock.SetIfNotExists(ctx, retireLockKey, "1", 2*time.Minute)
		if err == nil && !ok {
			if s.logger != nil {
				s.logger.Printf("[Jobs] Retire sweep skipped, lock held")
			}
			return nil, nil
		}
		if err == nil {
			defer func() {
				_ = s.lock.Delete(context.Background(), retireLockKey)
			}()
		}
	}

	cutoff := s.now().UTC().Add(-maxAge)
	retired, err := s.repo.RetireOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.Printf("[Jobs] Retired stale postings count=%d cutoff=%s", len(retired), cutoff.Format(time.RFC3339))
	}
	return retired, nil
}
