package usecase

import (
	"strings"
	"testing"

	"jobhunt/internal/search"
)

func TestJobsSearchCacheKey_Normalizes(t *testing.T) {
	a := JobsSearchCacheKey(search.Criteria{Title: "  Backend Engineer ", Skills: "Go, SQL"})
	b := JobsSearchCacheKey(search.Criteria{Title: "backend engineer", Skills: " go ,sql,"})
	if a != b {
		t.Fatalf("expected equal keys, got %s and %s", a, b)
	}
	if !strings.HasPrefix(a, "jobs:search:") {
		t.Fatalf("unexpected prefix: %s", a)
	}
}

func TestJobsSearchCacheKey_KeepsInnerWhitespace(t *testing.T) {
	// the filter matches substrings verbatim, so inner spacing selects different jobs
	a := JobsSearchCacheKey(search.Criteria{Title: "data scientist"})
	b := JobsSearchCacheKey(search.Criteria{Title: "data  scientist"})
	if a == b {
		t.Fatalf("expected distinct keys for different inner whitespace")
	}
}

func TestJobsSearchCacheKey_IgnoresExperienceLevel(t *testing.T) {
	a := JobsSearchCacheKey(search.Criteria{Title: "go", ExperienceLevel: "senior"})
	b := JobsSearchCacheKey(search.Criteria{Title: "go"})
	if a != b {
		t.Fatalf("expected experience level to be ignored")
	}
}

func TestJobsSearchCacheKey_DistinguishesCriteria(t *testing.T) {
	from := int64(5000)
	cases := []search.Criteria{
		{Title: "go"},
		{Location: "go"},
		{JobType: "go"},
		{SalaryMin: "go"},
		{SalaryMax: "go"},
		{Skills: "go"},
		{Title: "go", SalaryFrom: &from},
		{Title: "go", SalaryTo: &from},
	}
	seen := map[string]int{}
	for i, c := range cases {
		k := JobsSearchCacheKey(c)
		if j, ok := seen[k]; ok {
			t.Fatalf("cases %d and %d share key %s", j, i, k)
		}
		seen[k] = i
	}
}

func TestJobsSearchLockKey(t *testing.T) {
	if got := JobsSearchLockKey("jobs:search:abc"); got != "jobs:lock:abc" {
		t.Fatalf("unexpected lock key %s", got)
	}
}

func TestRecommendationCacheKey(t *testing.T) {
	if got := RecommendationCacheKey("u1", 5); got != "jobs:reco:u1:5" {
		t.Fatalf("unexpected key %s", got)
	}
	if got := RecommendationCachePattern("u1"); got != "jobs:reco:u1:*" {
		t.Fatalf("unexpected pattern %s", got)
	}
}
