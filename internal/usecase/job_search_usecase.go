package usecase

import (
	"context"
	"log"
	"time"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/repository"
	"jobhunt/internal/search"
)

type JobSearchUsecase interface {
	Search(ctx context.Context, criteria search.Criteria) ([]job.Posting, error)
	GetJob(ctx context.Context, jobID string) (job.Posting, error)
}

type JobSearch struct {
	jobs   repository.JobRepository
	cache  SearchCache
	logger *log.Logger

	lockWait func() time.Duration
}

func NewJobSearchUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *JobSearch {
	return &JobSearch{jobs: jobs, cache: cache, logger: logger, lockWait: jitteredLockWait}
}

func jitteredLockWait() time.Duration {
	jitterMs := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
	return 300*time.Millisecond + jitterMs
}

func (u *JobSearch) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

// Search runs the filter over the active catalog. Non-empty criteria are
// cached; concurrent misses on the same key wait briefly for the first
// caller to populate it.
func (u *JobSearch) Search(ctx context.Context, criteria search.Criteria) ([]job.Posting, error) {
	cacheable := !criteria.IsEmpty() && u.cache != nil
	cacheKey := ""
	lockKey := ""
	lockAcquired := false

	if cacheable {
		cacheKey = JobsSearchCacheKey(criteria)
		lockKey = JobsSearchLockKey(cacheKey)

		var cached []job.Posting
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logf("[Jobs] Cache HIT: %s", cacheKey)
			return cached, nil
		}
		u.logf("[Jobs] Cache MISS: %s", cacheKey)

		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
			u.logf("[Jobs] Lock acquired: %s", lockKey)
		} else if err == nil && !ok {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(u.lockWait()):
			}
			var waited []job.Posting
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &waited)
			if err2 == nil && hit {
				u.logf("[Jobs] Cache HIT: %s", cacheKey)
				return waited, nil
			}
			u.logf("[Jobs] Lock wait fallback: %s", lockKey)
		}
	}

	catalog, err := u.jobs.ListActive(ctx)
	if err != nil {
		u.logf("[Jobs] Catalog load error: %v", err)
		return nil, ErrInternal
	}

	out := search.Filter(criteria, catalog)

	if cacheable {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
		u.logf("[Jobs] Cache SET: %s", cacheKey)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

func (u *JobSearch) GetJob(ctx context.Context, jobID string) (job.Posting, error) {
	id, err := parseID(jobID)
	if err != nil {
		return job.Posting{}, ErrInvalidInput
	}
	p, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Posting{}, mapJobErr(err)
	}
	return p, nil
}
