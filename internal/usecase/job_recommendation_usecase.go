package usecase

import (
	"context"
	"errors"
	"log"

	"jobhunt/internal/domain/matching"
	"jobhunt/internal/domain/user"
	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]matching.Recommendation, error)
}

type JobRecommendation struct {
	users        user.Repository
	profiles     user.ProfileRepository
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	cache        SearchCache
	logger       *log.Logger

	defaultLimit int
	maxLimit     int
}

type JobRecommendationDeps struct {
	Users        user.Repository
	Profiles     user.ProfileRepository
	Applications repository.ApplicationRepository
	Jobs         repository.JobRepository
	Cache        SearchCache
	Logger       *log.Logger
	DefaultLimit int
	MaxLimit     int
}

func NewJobRecommendationUsecase(d JobRecommendationDeps) *JobRecommendation {
	def := d.DefaultLimit
	if def <= 0 {
		def = matching.DefaultLimit
	}
	maxLimit := d.MaxLimit
	if maxLimit < def {
		maxLimit = def
	}
	return &JobRecommendation{
		users:        d.Users,
		profiles:     d.Profiles,
		applications: d.Applications,
		jobs:         d.Jobs,
		cache:        d.Cache,
		logger:       d.Logger,
		defaultLimit: def,
		maxLimit:     maxLimit,
	}
}

// GetRecommendations loads the user's profile, application history and the
// active catalog, then ranks the catalog for that user. A missing profile
// is not an error: the user gets the most recent postings.
func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]matching.Recommendation, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = u.defaultLimit
	}
	if limit > u.maxLimit {
		limit = u.maxLimit
	}

	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	cacheKey := RecommendationCacheKey(userID.String(), limit)
	if u.cache != nil {
		var cached []matching.Recommendation
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Reco] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	var profile *user.Profile
	p, err := u.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		profile = &p
	case errors.Is(err, user.ErrProfileNotFound):
	default:
		return nil, ErrInternal
	}

	var applied []uuid.UUID
	if profile.HasSkills() {
		applied, err = u.applications.AppliedJobIDs(ctx, userID)
		if err != nil {
			return nil, ErrInternal
		}
	}

	catalog, err := u.jobs.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := matching.Recommend(profile, matching.NewAppliedSet(applied), catalog, limit)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
	}
	return out, nil
}
