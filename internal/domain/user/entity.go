package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is a job seeker's self-declared profile. Skills holds the parsed
// skill tokens; the store keeps the comma-separated form.
type Profile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Skills          []string
	ExperienceYears int
	Phone           string
	Bio             string
	Location        string
	CurrentPosition string
	Education       string
	LinkedInURL     string
	PortfolioURL    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p *Profile) HasSkills() bool {
	return p != nil && len(p.Skills) > 0
}
