package dto

import (
	"time"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/domain/matching"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	CompanyID      *uuid.UUID `json:"company_id"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	Salary         string     `json:"salary"`
	EmploymentType string     `json:"employment_type"`
	Description    string     `json:"description"`
	Requirements   string     `json:"requirements"`
	Benefits       string     `json:"benefits"`
	PostedBy       uuid.UUID  `json:"posted_by"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      string     `json:"created_at"`
}

type RecommendationResponse struct {
	Job   JobResponse `json:"job"`
	Score int         `json:"score"`
}

type CreateJobRequest struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Salary         string `json:"salary"`
	EmploymentType string `json:"employment_type"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	Benefits       string `json:"benefits"`
}

func NewJobResponse(p job.Posting) JobResponse {
	return JobResponse{
		ID:             p.ID,
		Title:          p.Title,
		CompanyID:      p.CompanyID,
		Company:        p.Company,
		Location:       p.Location,
		Salary:         p.Salary,
		EmploymentType: p.EmploymentType,
		Description:    p.Description,
		Requirements:   p.Requirements,
		Benefits:       p.Benefits,
		PostedBy:       p.PostedBy,
		IsActive:       p.IsActive,
		CreatedAt:      formatTime(p.CreatedAt),
	}
}

func NewJobListResponse(items []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewJobResponse(p))
	}
	return out
}

func NewRecommendationListResponse(items []matching.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, RecommendationResponse{Job: NewJobResponse(r.Job), Score: r.Score})
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
