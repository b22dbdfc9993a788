package user

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"jobhunt/internal/domain/skill"
	"jobhunt/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrUserNotFound = errors.New("user not found")
)

// Profile is the account joined with its optional job-seeker profile.
type Profile struct {
	User       user.User
	Profile    user.Profile
	HasProfile bool
}

// UpdateProfileInput carries only the fields being changed. Skills is the
// comma-separated declaration as typed by the user.
type UpdateProfileInput struct {
	Skills          *string
	ExperienceYears *int
	Phone           *string
	Bio             *string
	Location        *string
	CurrentPosition *string
	Education       *string
	LinkedInURL     *string
	PortfolioURL    *string
}

type Service struct {
	users    user.Repository
	profiles user.ProfileRepository
}

func NewService(users user.Repository, profiles user.ProfileRepository) *Service {
	return &Service{users: users, profiles: profiles}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrUserNotFound
		}
		return Profile{}, ErrInternal
	}

	out := Profile{User: sanitizeUser(usr)}
	p, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		out.Profile = p
		out.HasProfile = true
	case errors.Is(err, user.ErrProfileNotFound):
		out.Profile = user.Profile{UserID: userID, Skills: []string{}}
	default:
		return Profile{}, ErrInternal
	}
	return out, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	p := current.Profile
	p.UserID = userID

	if in.Skills != nil {
		p.Skills = skill.Parse(*in.Skills)
	}
	if in.ExperienceYears != nil {
		if *in.ExperienceYears < 0 {
			return Profile{}, ErrInvalidInput
		}
		p.ExperienceYears = *in.ExperienceYears
	}
	setText(&p.Phone, in.Phone)
	setText(&p.Bio, in.Bio)
	setText(&p.Location, in.Location)
	setText(&p.CurrentPosition, in.CurrentPosition)
	setText(&p.Education, in.Education)
	if in.LinkedInURL != nil {
		if !isValidURL(*in.LinkedInURL) {
			return Profile{}, ErrInvalidInput
		}
		setText(&p.LinkedInURL, in.LinkedInURL)
	}
	if in.PortfolioURL != nil {
		if !isValidURL(*in.PortfolioURL) {
			return Profile{}, ErrInvalidInput
		}
		setText(&p.PortfolioURL, in.PortfolioURL)
	}

	saved, err := s.profiles.Upsert(ctx, p)
	if err != nil {
		return Profile{}, ErrInternal
	}
	return Profile{User: current.User, Profile: saved, HasProfile: true}, nil
}

func setText(dst *string, v *string) {
	if v == nil {
		return
	}
	*dst = strings.TrimSpace(*v)
}

// isValidURL accepts an empty value, which clears the field.
func isValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
