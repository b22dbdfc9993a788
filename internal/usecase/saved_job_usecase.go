package usecase

import (
	"context"
	"errors"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

type SavedJobUsecase interface {
	Toggle(ctx context.Context, userID uuid.UUID, jobID string) (bool, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]job.Posting, error)
}

type SavedJob struct {
	saved repository.SavedJobRepository
	jobs  repository.JobRepository
}

func NewSavedJobUsecase(saved repository.SavedJobRepository, jobs repository.JobRepository) *SavedJob {
	return &SavedJob{saved: saved, jobs: jobs}
}

func (u *SavedJob) Toggle(ctx context.Context, userID uuid.UUID, jobID string) (bool, error) {
	if userID == uuid.Nil {
		return false, ErrUnauthorized
	}
	id, err := parseID(jobID)
	if err != nil {
		return false, ErrInvalidInput
	}
	if _, err := u.jobs.GetByID(ctx, id); err != nil {
		return false, mapJobErr(err)
	}

	saved, err := u.saved.Toggle(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return false, ErrJobNotFound
		}
		return false, ErrInternal
	}
	return saved, nil
}

func (u *SavedJob) ListMine(ctx context.Context, userID uuid.UUID) ([]job.Posting, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
