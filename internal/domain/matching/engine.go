package matching

import (
	"sort"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/domain/skill"
	"jobhunt/internal/domain/user"

	"github.com/google/uuid"
)

const DefaultLimit = 5

type Recommendation struct {
	Job   job.Posting
	Score int
}

// AppliedSet is the set of job ids a user already applied to.
type AppliedSet map[uuid.UUID]struct{}

func NewAppliedSet(ids []uuid.UUID) AppliedSet {
	s := make(AppliedSet, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		s[id] = struct{}{}
	}
	return s
}

func (s AppliedSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Recommend ranks catalog for a user.
//
// Without a profile or without skills it returns the limit most recent
// postings and ignores applied. Otherwise every posting not in applied is
// scored by how many of the user's skill tokens occur in its description and
// requirements; zero scores are dropped. Ranking is score descending, then
// creation time descending. limit <= 0 means DefaultLimit.
func Recommend(profile *user.Profile, applied AppliedSet, catalog []job.Posting, limit int) []Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if !profile.HasSkills() {
		return mostRecent(catalog, limit)
	}

	tokens := normalizeTokens(profile.Skills)
	if len(tokens) == 0 {
		return mostRecent(catalog, limit)
	}

	scored := make([]Recommendation, 0, len(catalog))
	for _, p := range catalog {
		if applied.Has(p.ID) {
			continue
		}
		score := skill.CountMatches(p.MatchText(), tokens)
		if score == 0 {
			continue
		}
		scored = append(scored, Recommendation{Job: p, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Job.CreatedAt.After(scored[j].Job.CreatedAt)
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func mostRecent(catalog []job.Posting, limit int) []Recommendation {
	idx := make([]int, len(catalog))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return catalog[idx[a]].CreatedAt.After(catalog[idx[b]].CreatedAt)
	})
	if len(idx) > limit {
		idx = idx[:limit]
	}

	out := make([]Recommendation, 0, len(idx))
	for _, i := range idx {
		out = append(out, Recommendation{Job: catalog[i]})
	}
	return out
}

func normalizeTokens(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = skill.Normalize(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
