package usecase

import (
	"context"
	"errors"
	"strings"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID uuid.UUID, jobID string, coverLetter string) (job.Application, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]repository.ApplicationRow, error)
	UpdateStatus(ctx context.Context, employerID uuid.UUID, applicationID string, status string) (job.Application, error)
}

type Application struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	cache        SearchCache
}

func NewApplicationUsecase(applications repository.ApplicationRepository, jobs repository.JobRepository, cache SearchCache) *Application {
	return &Application{applications: applications, jobs: jobs, cache: cache}
}

func (u *Application) Apply(ctx context.Context, userID uuid.UUID, jobID string, coverLetter string) (job.Application, error) {
	if userID == uuid.Nil {
		return job.Application{}, ErrUnauthorized
	}
	id, err := parseID(jobID)
	if err != nil {
		return job.Application{}, ErrInvalidInput
	}

	p, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Application{}, mapJobErr(err)
	}
	if !p.IsActive {
		return job.Application{}, ErrJobInactive
	}

	a, err := u.applications.Create(ctx, job.Application{
		UserID:      userID,
		JobID:       id,
		Status:      job.StatusPending,
		CoverLetter: strings.TrimSpace(coverLetter),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateApplication):
			return job.Application{}, ErrAlreadyApplied
		case errors.Is(err, repository.ErrJobNotFound):
			return job.Application{}, ErrJobNotFound
		default:
			return job.Application{}, ErrInternal
		}
	}

	invalidateRecommendations(ctx, u.cache, userID.String())
	return a, nil
}

func (u *Application) ListMine(ctx context.Context, userID uuid.UUID) ([]repository.ApplicationRow, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	rows, err := u.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

// UpdateStatus lets the employer who posted the job move an application
// between the known statuses.
func (u *Application) UpdateStatus(ctx context.Context, employerID uuid.UUID, applicationID string, status string) (job.Application, error) {
	if employerID == uuid.Nil {
		return job.Application{}, ErrUnauthorized
	}
	id, err := parseID(applicationID)
	if err != nil {
		return job.Application{}, ErrInvalidInput
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !job.IsValidStatus(status) {
		return job.Application{}, ErrInvalidInput
	}

	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return job.Application{}, ErrApplicationNotFound
		}
		return job.Application{}, ErrInternal
	}

	p, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return job.Application{}, mapJobErr(err)
	}
	if p.PostedBy != employerID {
		return job.Application{}, ErrForbidden
	}

	updated, err := u.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return job.Application{}, ErrApplicationNotFound
		}
		return job.Application{}, ErrInternal
	}
	return updated, nil
}
