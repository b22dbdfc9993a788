package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/search"

	"github.com/google/uuid"
)

func activePosting(title, desc string, age time.Duration) job.Posting {
	return job.Posting{
		ID:             uuid.New(),
		Title:          title,
		Company:        "Acme",
		Location:       "Remote",
		Salary:         "50000-70000",
		EmploymentType: "Full-time",
		Description:    desc,
		IsActive:       true,
		CreatedAt:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC).Add(-age),
	}
}

func TestJobSearch_EmptyCriteriaBypassesCache(t *testing.T) {
	repo := &fakeJobRepo{items: []job.Posting{
		activePosting("Old", "go", 2*time.Hour),
		activePosting("New", "go", time.Hour),
	}}
	c := newMemCache()
	uc := NewJobSearchUsecase(repo, c, nil)

	items, err := uc.Search(context.Background(), search.Criteria{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 || items[0].Title != "New" {
		t.Fatalf("expected full catalog newest first, got %+v", items)
	}
	if len(c.data) != 0 {
		t.Fatalf("expected nothing cached for empty criteria")
	}
}

func TestJobSearch_CachesFilteredResult(t *testing.T) {
	repo := &fakeJobRepo{items: []job.Posting{
		activePosting("Backend Engineer", "go and sql", time.Hour),
		activePosting("Designer", "figma", time.Hour),
	}}
	c := newMemCache()
	uc := NewJobSearchUsecase(repo, c, nil)
	crit := search.Criteria{Title: "backend"}

	first, err := uc.Search(context.Background(), crit)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 1 || first[0].Title != "Backend Engineer" {
		t.Fatalf("unexpected result: %+v", first)
	}

	second, err := uc.Search(context.Background(), crit)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listed != 1 {
		t.Fatalf("expected catalog loaded once, got %d", repo.listed)
	}
	if len(second) != 1 || second[0].ID != first[0].ID {
		t.Fatalf("cached result differs: %+v", second)
	}
	if c.locks[JobsSearchLockKey(JobsSearchCacheKey(crit))] {
		t.Fatalf("expected lock released")
	}
}

func TestJobSearch_CachedResultHonoursSpacing(t *testing.T) {
	catalog := []job.Posting{
		activePosting("Senior Data Scientist", "python", time.Hour),
		activePosting("Backend Engineer", "go", time.Hour),
	}
	repo := &fakeJobRepo{items: catalog}
	uc := NewJobSearchUsecase(repo, newMemCache(), nil)
	ctx := context.Background()

	single, err := uc.Search(ctx, search.Criteria{Title: "data scientist"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(single) != 1 {
		t.Fatalf("expected 1 match for single space, got %d", len(single))
	}

	crit := search.Criteria{Title: "data  scientist"}
	double, err := uc.Search(ctx, crit)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := search.Filter(crit, catalog)
	if len(double) != len(want) {
		t.Fatalf("expected %d jobs as the filter returns, got %d: %+v", len(want), len(double), double)
	}
	for i := range want {
		if double[i].ID != want[i].ID {
			t.Fatalf("item %d: expected %s, got %s", i, want[i].ID, double[i].ID)
		}
	}
}

func TestJobSearch_LockHeldFallsBackToDatabase(t *testing.T) {
	repo := &fakeJobRepo{items: []job.Posting{activePosting("Backend", "go", time.Hour)}}
	c := newMemCache()
	c.lockHeld = true
	uc := NewJobSearchUsecase(repo, c, nil)
	uc.lockWait = func() time.Duration { return 0 }

	items, err := uc.Search(context.Background(), search.Criteria{Title: "backend"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestJobSearch_CatalogErrorIsInternal(t *testing.T) {
	uc := NewJobSearchUsecase(&fakeJobRepo{err: errors.New("boom")}, nil, nil)
	_, err := uc.Search(context.Background(), search.Criteria{Title: "x"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobSearch_InactiveJobsNeverReturned(t *testing.T) {
	inactive := activePosting("Backend", "go", time.Hour)
	inactive.IsActive = false
	uc := NewJobSearchUsecase(&fakeJobRepo{items: []job.Posting{inactive}}, nil, nil)

	items, err := uc.Search(context.Background(), search.Criteria{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestJobSearch_GetJob(t *testing.T) {
	p := activePosting("Backend", "go", time.Hour)
	uc := NewJobSearchUsecase(&fakeJobRepo{items: []job.Posting{p}}, nil, nil)

	got, err := uc.GetJob(context.Background(), p.ID.String())
	if err != nil || got.ID != p.ID {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}
	if _, err := uc.GetJob(context.Background(), "nope"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.GetJob(context.Background(), uuid.NewString()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
