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
	ErrCompanyNotFound = errors.New("company not found")
	ErrDuplicateReview = errors.New("duplicate company review")
)

type CompanyRepository interface {
	GetOrCreate(ctx context.Context, name string, createdBy uuid.UUID) (job.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Company, error)
	ListReviews(ctx context.Context, companyID uuid.UUID) ([]job.CompanyReview, error)
	AddReview(ctx context.Context, r job.CompanyReview) (job.CompanyReview, error)
}

const companyColumns = `id, name, description, website, location,
	COALESCE(created_by, '00000000-0000-0000-0000-000000000000'::uuid), created_at`

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

// GetOrCreate matches company names case-insensitively so "Acme" and "acme "
// share one row.
func (r *PostgresCompanyRepository) GetOrCreate(ctx context.Context, name string, createdBy uuid.UUID) (job.Company, error) {
	name = strings.TrimSpace(name)

	c, err := scanCompany(r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE lower(name) = lower($1)`,
		name,
	))
	if err == nil {
		return c, nil
	}
	if !isNoRows(err) {
		return job.Company{}, err
	}

	return scanCompany(r.db.QueryRow(ctx,
		`INSERT INTO companies (id, name, created_by) VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING `+companyColumns,
		uuid.New(), name, createdBy,
	))
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Company, error) {
	c, err := scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return job.Company{}, ErrCompanyNotFound
		}
		return job.Company{}, err
	}
	return c, nil
}

// ListReviews returns the company's reviews newest first, each carrying the
// reviewer's display name.
func (r *PostgresCompanyRepository) ListReviews(ctx context.Context, companyID uuid.UUID) ([]job.CompanyReview, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cr.id, cr.company_id, cr.user_id, u.name, cr.rating, cr.comment, cr.created_at
		 FROM company_reviews cr
		 JOIN users u ON u.id = cr.user_id
		 WHERE cr.company_id = $1
		 ORDER BY cr.created_at DESC, cr.id`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.CompanyReview, 0)
	for rows.Next() {
		var rv job.CompanyReview
		var createdAt time.Time
		if err := rows.Scan(&rv.ID, &rv.CompanyID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &createdAt); err != nil {
			return nil, err
		}
		rv.CreatedAt = createdAt.UTC()
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) AddReview(ctx context.Context, rv job.CompanyReview) (job.CompanyReview, error) {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}

	var createdAt time.Time
	err := r.db.QueryRow(ctx,
		`INSERT INTO company_reviews (id, company_id, user_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		rv.ID, rv.CompanyID, rv.UserID, rv.Rating, rv.Comment,
	).Scan(&createdAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return job.CompanyReview{}, ErrDuplicateReview
		case isForeignKeyViolation(err) && pgConstraint(err) == "company_reviews_company_fk":
			return job.CompanyReview{}, ErrCompanyNotFound
		default:
			return job.CompanyReview{}, err
		}
	}
	rv.CreatedAt = createdAt.UTC()
	return rv, nil
}

func scanCompany(row database.Row) (job.Company, error) {
	var c job.Company
	var createdAt time.Time
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.Location, &c.CreatedBy, &createdAt); err != nil {
		return job.Company{}, err
	}
	c.CreatedAt = createdAt.UTC()
	return c, nil
}
