package dto

import (
	"jobhunt/internal/domain/user"
	ucuser "jobhunt/internal/usecase/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt string    `json:"created_at"`
}

type ProfileResponse struct {
	User            UserResponse `json:"user"`
	HasProfile      bool         `json:"has_profile"`
	Skills          []string     `json:"skills"`
	ExperienceYears int          `json:"experience_years"`
	Phone           string       `json:"phone"`
	Bio             string       `json:"bio"`
	Location        string       `json:"location"`
	CurrentPosition string       `json:"current_position"`
	Education       string       `json:"education"`
	LinkedInURL     string       `json:"linkedin_url"`
	PortfolioURL    string       `json:"portfolio_url"`
	UpdatedAt       string       `json:"updated_at"`
}

// UpdateProfileRequest uses pointers so omitted fields stay unchanged.
type UpdateProfileRequest struct {
	Skills          *string `json:"skills"`
	ExperienceYears *int    `json:"experience_years"`
	Phone           *string `json:"phone"`
	Bio             *string `json:"bio"`
	Location        *string `json:"location"`
	CurrentPosition *string `json:"current_position"`
	Education       *string `json:"education"`
	LinkedInURL     *string `json:"linkedin_url"`
	PortfolioURL    *string `json:"portfolio_url"`
}

func (r UpdateProfileRequest) Input() ucuser.UpdateProfileInput {
	return ucuser.UpdateProfileInput{
		Skills:          r.Skills,
		ExperienceYears: r.ExperienceYears,
		Phone:           r.Phone,
		Bio:             r.Bio,
		Location:        r.Location,
		CurrentPosition: r.CurrentPosition,
		Education:       r.Education,
		LinkedInURL:     r.LinkedInURL,
		PortfolioURL:    r.PortfolioURL,
	}
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: formatTime(u.CreatedAt)}
}

func NewProfileResponse(p ucuser.Profile) ProfileResponse {
	skills := p.Profile.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		User:            NewUserResponse(p.User),
		HasProfile:      p.HasProfile,
		Skills:          skills,
		ExperienceYears: p.Profile.ExperienceYears,
		Phone:           p.Profile.Phone,
		Bio:             p.Profile.Bio,
		Location:        p.Profile.Location,
		CurrentPosition: p.Profile.CurrentPosition,
		Education:       p.Profile.Education,
		LinkedInURL:     p.Profile.LinkedInURL,
		PortfolioURL:    p.Profile.PortfolioURL,
		UpdatedAt:       formatTime(p.Profile.UpdatedAt),
	}
}
