package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Posting struct {
	ID             uuid.UUID
	Title          string
	CompanyID      *uuid.UUID
	Company        string
	Location       string
	Salary         string
	EmploymentType string
	Description    string
	Requirements   string
	Benefits       string
	PostedBy       uuid.UUID
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MatchText is the lower-cased text skill tokens are matched against:
// description and requirements joined by a single space.
func (p Posting) MatchText() string {
	return strings.ToLower(p.Description + " " + p.Requirements)
}

const (
	MinRating = 1
	MaxRating = 5
)

type Company struct {
	ID          uuid.UUID
	Name        string
	Description string
	Website     string
	Location    string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}

// CompanyReview is one user's star rating of a company. A user reviews a
// company at most once.
type CompanyReview struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func IsValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

type Application struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	JobID       uuid.UUID
	Status      string
	CoverLetter string
	AppliedAt   time.Time
}

type SavedJob struct {
	UserID  uuid.UUID
	JobID   uuid.UUID
	SavedAt time.Time
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}
