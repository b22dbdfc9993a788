package repository

import (
	"context"

	"jobhunt/internal/database"
	"jobhunt/internal/domain/skill"
	"jobhunt/internal/domain/user"

	"github.com/google/uuid"
)

const profileColumns = `id, user_id, skills, experience_years, phone, bio, location,
	current_position, education, linkedin_url, portfolio_url, created_at, updated_at`

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		if isNoRows(err) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p user.Profile) (user.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_profiles (id, user_id, skills, experience_years, phone, bio, location,
			current_position, education, linkedin_url, portfolio_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			experience_years = EXCLUDED.experience_years,
			phone = EXCLUDED.phone,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			current_position = EXCLUDED.current_position,
			education = EXCLUDED.education,
			linkedin_url = EXCLUDED.linkedin_url,
			portfolio_url = EXCLUDED.portfolio_url,
			updated_at = now()
		 RETURNING `+profileColumns,
		p.ID,
		p.UserID,
		skill.Join(p.Skills),
		p.ExperienceYears,
		p.Phone,
		p.Bio,
		p.Location,
		p.CurrentPosition,
		p.Education,
		p.LinkedInURL,
		p.PortfolioURL,
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (user.Profile, error) {
	var p user.Profile
	var skills string
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&skills,
		&p.ExperienceYears,
		&p.Phone,
		&p.Bio,
		&p.Location,
		&p.CurrentPosition,
		&p.Education,
		&p.LinkedInURL,
		&p.PortfolioURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return user.Profile{}, err
	}
	p.Skills = skill.Parse(skills)
	return p, nil
}
