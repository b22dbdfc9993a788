package repository

import (
	"context"
	"errors"
	"time"

	"jobhunt/internal/database"
	"jobhunt/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("duplicate application")
)

type ApplicationRepository interface {
	Create(ctx context.Context, a job.Application) (job.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Application, error)
	AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ApplicationRow, error)
	ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]ApplicantRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (job.Application, error)
}

// ApplicationRow is an application joined with the posting it targets.
type ApplicationRow struct {
	Application job.Application
	JobTitle    string
	Company     string
	Location    string
	JobActive   bool
}

// ApplicantRow is an application joined with the applicant, for employers.
type ApplicantRow struct {
	Application    job.Application
	JobTitle       string
	ApplicantName  string
	ApplicantEmail string
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a job.Application) (job.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = job.StatusPending
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_applications (id, user_id, job_id, status, cover_letter)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, job_id, status, cover_letter, applied_at`,
		a.ID, a.UserID, a.JobID, a.Status, a.CoverLetter,
	)
	out, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err) {
			return job.Application{}, ErrDuplicateApplication
		}
		if isForeignKeyViolation(err) {
			return job.Application{}, ErrJobNotFound
		}
		return job.Application{}, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, job_id, status, cover_letter, applied_at FROM job_applications WHERE id = $1`,
		id,
	)
	a, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return job.Application{}, ErrApplicationNotFound
		}
		return job.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT job_id FROM job_applications WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]ApplicationRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.user_id, a.job_id, a.status, a.cover_letter, a.applied_at,
			j.title, j.company, j.location, j.is_active
		 FROM job_applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.user_id = $1
		 ORDER BY a.applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicationRow, 0)
	for rows.Next() {
		var it ApplicationRow
		a := &it.Application
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.JobID, &a.Status, &a.CoverLetter, &a.AppliedAt,
			&it.JobTitle, &it.Company, &it.Location, &it.JobActive,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]ApplicantRow, error) {
	if len(jobIDs) == 0 {
		return []ApplicantRow{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.user_id, a.job_id, a.status, a.cover_letter, a.applied_at,
			j.title, u.name, u.email
		 FROM job_applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN users u ON u.id = a.user_id
		 WHERE a.job_id = ANY($1)
		 ORDER BY a.applied_at DESC`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicantRow, 0)
	for rows.Next() {
		var it ApplicantRow
		a := &it.Application
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.JobID, &a.Status, &a.CoverLetter, &a.AppliedAt,
			&it.JobTitle, &it.ApplicantName, &it.ApplicantEmail,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (job.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE job_applications SET status = $2 WHERE id = $1
		 RETURNING id, user_id, job_id, status, cover_letter, applied_at`,
		id, status,
	)
	a, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return job.Application{}, ErrApplicationNotFound
		}
		return job.Application{}, err
	}
	return a, nil
}

func scanApplication(row database.Row) (job.Application, error) {
	var a job.Application
	var appliedAt time.Time
	if err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.CoverLetter, &appliedAt); err != nil {
		return job.Application{}, err
	}
	a.AppliedAt = appliedAt.UTC()
	return a, nil
}
