package usecase

import (
	"context"
	"log"
	"strings"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/repository"
	ucjob "jobhunt/internal/usecase/job"

	"github.com/google/uuid"
)

type CreateJobInput struct {
	Title          string
	Company        string
	Location       string
	Salary         string
	EmploymentType string
	Description    string
	Requirements   string
	Benefits       string
}

type EmployerDashboard struct {
	Jobs              []job.Posting
	Applications      []repository.ApplicantRow
	TotalJobs         int
	ActiveJobs        int
	TotalApplications int
	PendingCount      int
	AcceptedCount     int
}

type JobPostingUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateJobInput) (job.Posting, error)
	Deactivate(ctx context.Context, ownerID uuid.UUID, jobID string) error
	EmployerDashboard(ctx context.Context, ownerID uuid.UUID) (EmployerDashboard, error)
	RetireStale(ctx context.Context) ([]job.Posting, error)
}

type JobPosting struct {
	jobs         repository.JobRepository
	companies    repository.CompanyRepository
	applications repository.ApplicationRepository
	retire       *ucjob.RetireService
	cache        SearchCache
	notifier     CatalogNotifier
	logger       *log.Logger
}

type JobPostingDeps struct {
	Jobs         repository.JobRepository
	Companies    repository.CompanyRepository
	Applications repository.ApplicationRepository
	Retire       *ucjob.RetireService
	Cache        SearchCache
	Notifier     CatalogNotifier
	Logger       *log.Logger
}

func NewJobPostingUsecase(d JobPostingDeps) *JobPosting {
	n := d.Notifier
	if n == nil {
		n = noopNotifier{}
	}
	return &JobPosting{
		jobs:         d.Jobs,
		companies:    d.Companies,
		applications: d.Applications,
		retire:       d.Retire,
		cache:        d.Cache,
		notifier:     n,
		logger:       d.Logger,
	}
}

func (in CreateJobInput) normalized() (CreateJobInput, bool) {
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.Location = strings.TrimSpace(in.Location)
	in.Salary = strings.TrimSpace(in.Salary)
	in.EmploymentType = strings.TrimSpace(in.EmploymentType)
	in.Description = strings.TrimSpace(in.Description)
	in.Requirements = strings.TrimSpace(in.Requirements)
	in.Benefits = strings.TrimSpace(in.Benefits)

	ok := in.Title != "" &&
		in.Company != "" &&
		in.Location != "" &&
		in.Salary != "" &&
		in.EmploymentType != "" &&
		in.Description != ""
	return in, ok
}

func (u *JobPosting) Create(ctx context.Context, ownerID uuid.UUID, in CreateJobInput) (job.Posting, error) {
	if ownerID == uuid.Nil {
		return job.Posting{}, ErrUnauthorized
	}
	in, ok := in.normalized()
	if !ok {
		return job.Posting{}, ErrInvalidInput
	}

	p := job.Posting{
		Title:          in.Title,
		Company:        in.Company,
		Location:       in.Location,
		Salary:         in.Salary,
		EmploymentType: in.EmploymentType,
		Description:    in.Description,
		Requirements:   in.Requirements,
		Benefits:       in.Benefits,
		PostedBy:       ownerID,
	}

	if u.companies != nil {
		c, err := u.companies.GetOrCreate(ctx, in.Company, ownerID)
		if err != nil {
			return job.Posting{}, ErrInternal
		}
		p.CompanyID = &c.ID
		p.Company = c.Name
	}

	created, err := u.jobs.Create(ctx, p)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] Create error owner=%s err=%v", ownerID, err)
		}
		return job.Posting{}, ErrInternal
	}

	invalidateCatalog(ctx, u.cache)
	u.notifier.JobPosted(created)
	return created, nil
}

func (u *JobPosting) Deactivate(ctx context.Context, ownerID uuid.UUID, jobID string) error {
	if ownerID == uuid.Nil {
		return ErrUnauthorized
	}
	id, err := parseID(jobID)
	if err != nil {
		return ErrInvalidInput
	}
	p, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return mapJobErr(err)
	}
	if p.PostedBy != ownerID {
		return ErrForbidden
	}

	changed, err := u.jobs.Deactivate(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !changed {
		return nil
	}

	p.IsActive = false
	invalidateCatalog(ctx, u.cache)
	u.notifier.JobRetired(p)
	return nil
}

func (u *JobPosting) EmployerDashboard(ctx context.Context, ownerID uuid.UUID) (EmployerDashboard, error) {
	if ownerID == uuid.Nil {
		return EmployerDashboard{}, ErrUnauthorized
	}

	jobs, err := u.jobs.ListByOwner(ctx, ownerID)
	if err != nil {
		return EmployerDashboard{}, ErrInternal
	}

	ids := make([]uuid.UUID, 0, len(jobs))
	d := EmployerDashboard{Jobs: jobs, TotalJobs: len(jobs)}
	for _, j := range jobs {
		ids = append(ids, j.ID)
		if j.IsActive {
			d.ActiveJobs++
		}
	}

	apps, err := u.applications.ListByJobIDs(ctx, ids)
	if err != nil {
		return EmployerDashboard{}, ErrInternal
	}
	d.Applications = apps
	d.TotalApplications = len(apps)
	for _, a := range apps {
		switch a.Application.Status {
		case job.StatusPending:
			d.PendingCount++
		case job.StatusAccepted:
			d.AcceptedCount++
		}
	}
	return d, nil
}

// RetireStale deactivates postings older than the configured age and
// announces each one. It is a no-op when retirement is disabled.
func (u *JobPosting) RetireStale(ctx context.Context) ([]job.Posting, error) {
	if !u.retire.Enabled() {
		return nil, nil
	}

	retired, err := u.retire.RetireStale(ctx, u.retire.MaxAge())
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] Retire error: %v", err)
		}
		return nil, ErrInternal
	}
	if len(retired) == 0 {
		return retired, nil
	}

	invalidateCatalog(ctx, u.cache)
	for _, p := range retired {
		u.notifier.JobRetired(p)
	}
	return retired, nil
}
