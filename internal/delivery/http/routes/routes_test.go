package routes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobhunt/internal/config"
	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/delivery/http/handler"
	"jobhunt/internal/delivery/http/middleware"
	v1 "jobhunt/internal/delivery/http/routes/v1"
	"jobhunt/internal/domain/job"
	"jobhunt/internal/domain/matching"
	"jobhunt/internal/pkg/jwt"
	"jobhunt/internal/repository"
	"jobhunt/internal/search"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type fakeSearch struct {
	items    []job.Posting
	criteria search.Criteria
}

func (f *fakeSearch) Search(_ context.Context, c search.Criteria) ([]job.Posting, error) {
	f.criteria = c
	return f.items, nil
}

func (f *fakeSearch) GetJob(_ context.Context, id string) (job.Posting, error) {
	for _, p := range f.items {
		if p.ID.String() == id {
			return p, nil
		}
	}
	return job.Posting{}, usecase.ErrJobNotFound
}

type fakeRecommendation struct {
	known uuid.UUID
	items []matching.Recommendation
	limit int
}

func (f *fakeRecommendation) GetRecommendations(_ context.Context, userID uuid.UUID, limit int) ([]matching.Recommendation, error) {
	if userID != f.known {
		return nil, usecase.ErrUserNotFound
	}
	f.limit = limit
	return f.items, nil
}

type fakeApplications struct {
	applied map[uuid.UUID]bool
}

func (f *fakeApplications) Apply(_ context.Context, userID uuid.UUID, jobID string, _ string) (job.Application, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return job.Application{}, usecase.ErrInvalidInput
	}
	if f.applied[id] {
		return job.Application{}, usecase.ErrAlreadyApplied
	}
	f.applied[id] = true
	return job.Application{ID: uuid.New(), UserID: userID, JobID: id, Status: job.StatusPending, AppliedAt: time.Now()}, nil
}

func (f *fakeApplications) ListMine(context.Context, uuid.UUID) ([]repository.ApplicationRow, error) {
	return nil, errors.New("db down")
}

func (f *fakeApplications) UpdateStatus(context.Context, uuid.UUID, string, string) (job.Application, error) {
	return job.Application{}, usecase.ErrForbidden
}

type fakeCompanies struct {
	company job.Company
	reviews []job.CompanyReview
}

func (f *fakeCompanies) Get(_ context.Context, id string) (usecase.CompanyProfile, error) {
	if id != f.company.ID.String() {
		return usecase.CompanyProfile{}, usecase.ErrCompanyNotFound
	}
	p := usecase.CompanyProfile{Company: f.company}
	sum := 0
	for i := len(f.reviews) - 1; i >= 0; i-- {
		p.Reviews = append(p.Reviews, f.reviews[i])
		sum += f.reviews[i].Rating
	}
	if len(f.reviews) > 0 {
		p.AverageRating = float64(sum) / float64(len(f.reviews))
	}
	return p, nil
}

func (f *fakeCompanies) Review(_ context.Context, userID uuid.UUID, id string, rating int, comment string) (job.CompanyReview, error) {
	if !job.IsValidRating(rating) {
		return job.CompanyReview{}, usecase.ErrInvalidInput
	}
	if id != f.company.ID.String() {
		return job.CompanyReview{}, usecase.ErrCompanyNotFound
	}
	for _, r := range f.reviews {
		if r.UserID == userID {
			return job.CompanyReview{}, usecase.ErrAlreadyReviewed
		}
	}
	rv := job.CompanyReview{ID: uuid.New(), CompanyID: f.company.ID, UserID: userID, Rating: rating, Comment: comment, CreatedAt: time.Now()}
	f.reviews = append(f.reviews, rv)
	return rv, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app    *fiber.App
	jwt    *jwt.HMACService
	search *fakeSearch
	reco      *fakeRecommendation
	companies *fakeCompanies
	userID    uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	userID := uuid.New()
	now := time.Now()
	jobs := []job.Posting{
		{ID: uuid.New(), Title: "Go Developer", Company: "Acme", IsActive: true, CreatedAt: now},
		{ID: uuid.New(), Title: "Data Engineer", Company: "Beta", IsActive: true, CreatedAt: now.Add(-time.Hour)},
	}

	s := &testServer{
		jwt: jwt.NewHMACService(config.JWTConfig{
			AccessSecret:     "access-secret",
			RefreshSecret:    "refresh-secret",
			AccessExpiresIn:  time.Minute,
			RefreshExpiresIn: time.Hour,
		}),
		search: &fakeSearch{items: jobs},
		reco:   &fakeRecommendation{known: userID, items: []matching.Recommendation{{Job: jobs[0], Score: 2}}},
		companies: &fakeCompanies{company: job.Company{ID: uuid.New(), Name: "Acme", Location: "Jakarta", CreatedAt: now}},
		userID:    userID,
	}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	handlers := v1.Handlers{
		Jobs:           handler.NewJobsHandler(s.search, nil),
		Recommendation: handler.NewJobRecommendationHandler(s.reco),
		Application:    handler.NewApplicationHandler(&fakeApplications{applied: map[uuid.UUID]bool{}}, nil),
		Company:        handler.NewCompanyHandler(s.companies),
	}
	auth := middleware.NewAuthMiddleware(s.jwt).Middleware()
	NewRegistry(handler.NewHealthHandler(fakePinger{}, fakePinger{err: errors.New("down")}), nil, handlers, auth).Register(app)

	s.app = app
	return s
}

func (s *testServer) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := s.jwt.GenerateAccessToken(userID, "seeker@example.com")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return tok
}

func (s *testServer) do(t *testing.T, method, target, token string) (int, envelope) {
	t.Helper()
	return s.doJSON(t, method, target, token, "")
}

func (s *testServer) doJSON(t *testing.T, method, target, token, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		t.Fatalf("decode envelope %q: %v", string(b), err)
	}
	return resp.StatusCode, env
}

func TestHealth_CacheDownIsNotFatal(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/health", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var data map[string]string
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data["database"] != "up" || data["cache"] != "down" {
		t.Fatalf("unexpected health data: %v", data)
	}
}

func TestSearch_PassesQueryCriteria(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/v1/jobs?title=go&skills=go,%20sql&salary_from=50000&experience=senior", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	got := s.search.criteria
	if got.Title != "go" || got.Skills != "go, sql" || got.ExperienceLevel != "senior" {
		t.Fatalf("unexpected criteria: %+v", got)
	}
	if got.SalaryFrom == nil || *got.SalaryFrom != 50000 || got.SalaryTo != nil {
		t.Fatalf("unexpected salary bounds: %+v", got)
	}

	var items []map[string]any
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(items) != 2 || items[0]["title"] != "Go Developer" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestSearch_InvalidSalaryBound(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/v1/jobs?salary_to=abc", "")
	if status != http.StatusBadRequest || env.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 envelope, got %d %+v", status, env)
	}
}

func TestGetJob_NotFound(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/v1/jobs/"+uuid.NewString(), "")
	if status != http.StatusNotFound || env.Message != "Job not found" {
		t.Fatalf("expected 404 Job not found, got %d %+v", status, env)
	}
}

func TestRecommendations_RequiresAuth(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, http.MethodGet, "/api/v1/jobs/recommendations", "")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestRecommendations_RouteIsNotJobID(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/v1/jobs/recommendations?limit=3", s.token(t, s.userID))
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, env)
	}
	if s.reco.limit != 3 {
		t.Fatalf("expected limit 3 passed through, got %d", s.reco.limit)
	}

	var items []struct {
		Job   map[string]any `json:"job"`
		Score int            `json:"score"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(items) != 1 || items[0].Score != 2 || items[0].Job["title"] != "Go Developer" {
		t.Fatalf("unexpected recommendations: %+v", items)
	}
}

func TestRecommendations_UnknownUser(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/v1/jobs/recommendations", s.token(t, uuid.New()))
	if status != http.StatusNotFound || env.Message != "User not found" {
		t.Fatalf("expected 404 User not found, got %d %+v", status, env)
	}
}

func TestRecommendations_InvalidLimit(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, http.MethodGet, "/api/v1/jobs/recommendations?limit=many", s.token(t, s.userID))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestApply_TwiceConflicts(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, s.userID)
	target := "/api/v1/jobs/" + s.search.items[0].ID.String() + "/apply"

	if status, env := s.do(t, http.MethodPost, target, tok); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d %+v", status, env)
	}
	if status, _ := s.do(t, http.MethodPost, target, tok); status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/v1/me/applications", s.token(t, s.userID))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if env.Message == "db down" || string(env.Data) != "null" {
		t.Fatalf("expected cause to be hidden, got %+v", env)
	}
}

func TestUpdateStatus_Forbidden(t *testing.T) {
	s := newTestServer(t)

	status, env := s.doJSON(t, http.MethodPatch, "/api/v1/applications/"+uuid.NewString()+"/status", s.token(t, s.userID), `{"status":"accepted"}`)
	if status != http.StatusForbidden || env.Message != "Forbidden" {
		t.Fatalf("expected 403 Forbidden, got %d %+v", status, env)
	}
}

func TestCompany_ProfileWithoutReviews(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/v1/companies/"+s.companies.company.ID.String(), "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, env)
	}
	var data dto.CompanyProfileResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Company.Name != "Acme" || data.AverageRating != 0 || len(data.Reviews) != 0 {
		t.Fatalf("unexpected profile: %+v", data)
	}
}

func TestCompany_UnknownIsNotFound(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/v1/companies/"+uuid.NewString(), "")
	if status != http.StatusNotFound || env.Message != "Company not found" {
		t.Fatalf("expected 404 Company not found, got %d %+v", status, env)
	}
}

func TestCompany_ReviewRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	target := "/api/v1/companies/" + s.companies.company.ID.String() + "/reviews"
	if status, _ := s.doJSON(t, http.MethodPost, target, "", `{"rating":4}`); status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestCompany_ReviewFlow(t *testing.T) {
	s := newTestServer(t)
	target := "/api/v1/companies/" + s.companies.company.ID.String()
	first, second := s.token(t, s.userID), s.token(t, uuid.New())

	if status, env := s.doJSON(t, http.MethodPost, target+"/reviews", first, `{"rating":5,"comment":"great"}`); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d %+v", status, env)
	}
	if status, _ := s.doJSON(t, http.MethodPost, target+"/reviews", first, `{"rating":3}`); status != http.StatusConflict {
		t.Fatalf("expected 409 on second review, got %d", status)
	}
	if status, _ := s.doJSON(t, http.MethodPost, target+"/reviews", second, `{"rating":6}`); status != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating 6, got %d", status)
	}
	if status, _ := s.doJSON(t, http.MethodPost, target+"/reviews", second, `{"rating":2}`); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}

	status, env := s.do(t, http.MethodGet, target, "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var data dto.CompanyProfileResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.AverageRating != 3.5 || data.ReviewCount != 2 {
		t.Fatalf("expected average 3.5 over 2 reviews, got %+v", data)
	}
	if data.Reviews[0].Rating != 2 || data.Reviews[1].Comment != "great" {
		t.Fatalf("expected newest review first, got %+v", data.Reviews)
	}
}
