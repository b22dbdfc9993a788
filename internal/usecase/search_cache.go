package usecase

import (
	"context"
	"time"
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// invalidateCatalog drops every cached view derived from the job catalog.
func invalidateCatalog(ctx context.Context, cache SearchCache) {
	if cache == nil {
		return
	}
	_ = cache.DeleteByPattern(ctx, jobsSearchPrefix+"*")
	_ = cache.DeleteByPattern(ctx, jobsRecoPrefix+"*")
}

func invalidateRecommendations(ctx context.Context, cache SearchCache, userID string) {
	if cache == nil {
		return
	}
	_ = cache.DeleteByPattern(ctx, RecommendationCachePattern(userID))
}
