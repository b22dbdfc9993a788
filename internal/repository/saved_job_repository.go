package repository

import (
	"context"

	"jobhunt/internal/database"
	"jobhunt/internal/domain/job"

	"github.com/google/uuid"
)

type SavedJobRepository interface {
	Toggle(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]job.Posting, error)
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

// Toggle removes the bookmark when present and creates it otherwise. The
// returned flag reports whether the job is saved afterwards.
func (r *PostgresSavedJobRepository) Toggle(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	saved := false
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		removed, err := tx.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
		if err != nil || removed > 0 {
			return err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO saved_jobs (user_id, job_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, jobID,
		); err != nil {
			if isForeignKeyViolation(err) {
				return ErrJobNotFound
			}
			return err
		}
		saved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return saved, nil
}

func (r *PostgresSavedJobRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, j.company_id, j.company, j.location, j.salary, j.employment_type,
			j.description, j.requirements, j.benefits,
			COALESCE(j.posted_by, '00000000-0000-0000-0000-000000000000'::uuid),
			j.is_active, j.created_at, j.updated_at
		 FROM saved_jobs s
		 JOIN jobs j ON j.id = s.job_id
		 WHERE s.user_id = $1
		 ORDER BY s.saved_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectPostings(rows)
}
