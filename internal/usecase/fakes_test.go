package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/domain/user"
	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	mu      sync.Mutex
	items   []job.Posting
	err     error
	listed  int
	retired []job.Posting
}

func (f *fakeJobRepo) ListActive(context.Context) ([]job.Posting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listed++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]job.Posting, 0, len(f.items))
	for _, p := range f.items {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return job.Posting{}, repository.ErrJobNotFound
}

func (f *fakeJobRepo) Create(_ context.Context, p job.Posting) (job.Posting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return job.Posting{}, f.err
	}
	p.ID = uuid.New()
	p.IsActive = true
	p.CreatedAt = time.Now().UTC()
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakeJobRepo) Deactivate(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].IsActive {
			f.items[i].IsActive = false
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobRepo) ListByOwner(_ context.Context, owner uuid.UUID) ([]job.Posting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]job.Posting, 0)
	for _, p := range f.items {
		if p.PostedBy == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) RetireOlderThan(_ context.Context, cutoff time.Time) ([]job.Posting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]job.Posting, 0)
	for i := range f.items {
		if f.items[i].IsActive && f.items[i].CreatedAt.Before(cutoff) {
			f.items[i].IsActive = false
			out = append(out, f.items[i])
		}
	}
	f.retired = append(f.retired, out...)
	return out, nil
}

type fakeCompanyRepo struct {
	byName  map[string]job.Company
	reviews []job.CompanyReview
	err     error
}

func (f *fakeCompanyRepo) GetOrCreate(_ context.Context, name string, createdBy uuid.UUID) (job.Company, error) {
	if f.byName == nil {
		f.byName = map[string]job.Company{}
	}
	k := strings.ToLower(strings.TrimSpace(name))
	if c, ok := f.byName[k]; ok {
		return c, nil
	}
	c := job.Company{ID: uuid.New(), Name: strings.TrimSpace(name), CreatedBy: createdBy}
	f.byName[k] = c
	return c, nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (job.Company, error) {
	if f.err != nil {
		return job.Company{}, f.err
	}
	for _, c := range f.byName {
		if c.ID == id {
			return c, nil
		}
	}
	return job.Company{}, repository.ErrCompanyNotFound
}

// ListReviews returns reviews in reverse insertion order, newest first.
func (f *fakeCompanyRepo) ListReviews(_ context.Context, companyID uuid.UUID) ([]job.CompanyReview, error) {
	out := make([]job.CompanyReview, 0)
	for i := len(f.reviews) - 1; i >= 0; i-- {
		if f.reviews[i].CompanyID == companyID {
			out = append(out, f.reviews[i])
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) AddReview(_ context.Context, rv job.CompanyReview) (job.CompanyReview, error) {
	for _, existing := range f.reviews {
		if existing.CompanyID == rv.CompanyID && existing.UserID == rv.UserID {
			return job.CompanyReview{}, repository.ErrDuplicateReview
		}
	}
	rv.ID = uuid.New()
	rv.CreatedAt = time.Now().UTC()
	f.reviews = append(f.reviews, rv)
	return rv, nil
}

type fakeApplicationRepo struct {
	items []job.Application
	users map[uuid.UUID]user.User
}

func (f *fakeApplicationRepo) Create(_ context.Context, a job.Application) (job.Application, error) {
	for _, it := range f.items {
		if it.UserID == a.UserID && it.JobID == a.JobID {
			return job.Application{}, repository.ErrDuplicateApplication
		}
	}
	a.ID = uuid.New()
	a.AppliedAt = time.Now().UTC()
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (job.Application, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return job.Application{}, repository.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) AppliedJobIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0)
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, it.JobID)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]repository.ApplicationRow, error) {
	out := make([]repository.ApplicationRow, 0)
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, repository.ApplicationRow{Application: it})
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByJobIDs(_ context.Context, jobIDs []uuid.UUID) ([]repository.ApplicantRow, error) {
	want := map[uuid.UUID]bool{}
	for _, id := range jobIDs {
		want[id] = true
	}
	out := make([]repository.ApplicantRow, 0)
	for _, it := range f.items {
		if want[it.JobID] {
			out = append(out, repository.ApplicantRow{Application: it, ApplicantName: f.users[it.UserID].Name})
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (job.Application, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			return f.items[i], nil
		}
	}
	return job.Application{}, repository.ErrApplicationNotFound
}

type fakeSavedRepo struct {
	saved map[[2]uuid.UUID]bool
	jobs  *fakeJobRepo
}

func (f *fakeSavedRepo) Toggle(_ context.Context, userID, jobID uuid.UUID) (bool, error) {
	if f.saved == nil {
		f.saved = map[[2]uuid.UUID]bool{}
	}
	k := [2]uuid.UUID{userID, jobID}
	if f.saved[k] {
		delete(f.saved, k)
		return false, nil
	}
	f.saved[k] = true
	return true, nil
}

func (f *fakeSavedRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]job.Posting, error) {
	out := make([]job.Posting, 0)
	for k := range f.saved {
		if k[0] != userID {
			continue
		}
		p, err := f.jobs.GetByID(ctx, k[1])
		if err == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
	err   error
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u user.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.users[id]
	return ok, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]user.Profile
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return user.Profile{}, user.ErrProfileNotFound
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p user.Profile) (user.Profile, error) {
	if f.profiles == nil {
		f.profiles = map[uuid.UUID]user.Profile{}
	}
	f.profiles[p.UserID] = p
	return p, nil
}

// memCache is an in-process SearchCache that records deleted patterns.
type memCache struct {
	mu       sync.Mutex
	data     map[string][]byte
	locks    map[string]bool
	patterns []string
	lockHeld bool
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, locks: map[string]bool{}}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.locks, key)
	return nil
}

func (m *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patterns = append(m.patterns, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func (m *memCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lockHeld || m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

type recordingNotifier struct {
	posted  []job.Posting
	retired []job.Posting
}

func (r *recordingNotifier) JobPosted(p job.Posting)  { r.posted = append(r.posted, p) }
func (r *recordingNotifier) JobRetired(p job.Posting) { r.retired = append(r.retired, p) }
