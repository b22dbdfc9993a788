package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobhunt/internal/database"
	"jobhunt/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	ListActive(ctx context.Context) ([]job.Posting, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Posting, error)
	Create(ctx context.Context, p job.Posting) (job.Posting, error)
	Deactivate(ctx context.Context, jobID uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]job.Posting, error)
	RetireOlderThan(ctx context.Context, cutoff time.Time) ([]job.Posting, error)
}

const jobColumns = `id, title, company_id, company, location, salary, employment_type,
	description, requirements, benefits, COALESCE(posted_by, '00000000-0000-0000-0000-000000000000'::uuid),
	is_active, created_at, updated_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE is_active = TRUE
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	return collectPostings(rows)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	p, err := scanPosting(row)
	if err != nil {
		if isNoRows(err) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, company_id, company, location, salary, employment_type,
			description, requirements, benefits, posted_by, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE)
		 RETURNING `+jobColumns,
		p.ID,
		strings.TrimSpace(p.Title),
		p.CompanyID,
		strings.TrimSpace(p.Company),
		strings.TrimSpace(p.Location),
		strings.TrimSpace(p.Salary),
		strings.TrimSpace(p.EmploymentType),
		p.Description,
		p.Requirements,
		p.Benefits,
		p.PostedBy,
	)
	return scanPosting(row)
}

func (r *PostgresJobRepository) Deactivate(ctx context.Context, jobID uuid.UUID) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active = TRUE`,
		jobID,
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresJobRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE posted_by = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	return collectPostings(rows)
}

func (r *PostgresJobRepository) RetireOlderThan(ctx context.Context, cutoff time.Time) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`UPDATE jobs SET is_active = FALSE, updated_at = now()
		 WHERE is_active = TRUE AND created_at < $1
		 RETURNING `+jobColumns,
		cutoff.UTC(),
	)
	if err != nil {
		return nil, err
	}
	return collectPostings(rows)
}

func collectPostings(rows database.Rows) ([]job.Posting, error) {
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	var companyID *uuid.UUID
	err := row.Scan(
		&p.ID,
		&p.Title,
		&companyID,
		&p.Company,
		&p.Location,
		&p.Salary,
		&p.EmploymentType,
		&p.Description,
		&p.Requirements,
		&p.Benefits,
		&p.PostedBy,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return job.Posting{}, err
	}
	p.CompanyID = companyID
	return p, nil
}
