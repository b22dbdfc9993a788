package dto

import (
	"math"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/usecase"

	"github.com/google/uuid"
)

type ReviewCompanyRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	CreatedAt   string    `json:"created_at"`
}

type CompanyReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt string    `json:"created_at"`
}

type CompanyProfileResponse struct {
	Company       CompanyResponse         `json:"company"`
	Reviews       []CompanyReviewResponse `json:"reviews"`
	AverageRating float64                 `json:"average_rating"`
	ReviewCount   int                     `json:"review_count"`
}

func NewCompanyReviewResponse(r job.CompanyReview) CompanyReviewResponse {
	return CompanyReviewResponse{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: formatTime(r.CreatedAt),
	}
}

// NewCompanyProfileResponse rounds the average rating to two decimals.
func NewCompanyProfileResponse(p usecase.CompanyProfile) CompanyProfileResponse {
	reviews := make([]CompanyReviewResponse, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, NewCompanyReviewResponse(r))
	}
	return CompanyProfileResponse{
		Company: CompanyResponse{
			ID:          p.Company.ID,
			Name:        p.Company.Name,
			Description: p.Company.Description,
			Website:     p.Company.Website,
			Location:    p.Company.Location,
			CreatedAt:   formatTime(p.Company.CreatedAt),
		},
		Reviews:       reviews,
		AverageRating: math.Round(p.AverageRating*100) / 100,
		ReviewCount:   len(reviews),
	}
}
