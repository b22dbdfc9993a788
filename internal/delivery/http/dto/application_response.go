package dto

import (
	"jobhunt/internal/domain/job"
	"jobhunt/internal/repository"
	"jobhunt/internal/usecase"

	"github.com/google/uuid"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	UserID      uuid.UUID `json:"user_id"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"cover_letter"`
	AppliedAt   string    `json:"applied_at"`
	JobTitle    string    `json:"job_title,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
}

type ApplicantResponse struct {
	ApplicationResponse
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
}

type DashboardResponse struct {
	TotalJobs         int                 `json:"total_jobs"`
	ActiveJobs        int                 `json:"active_jobs"`
	TotalApplications int                 `json:"total_applications"`
	PendingCount      int                 `json:"pending_count"`
	AcceptedCount     int                 `json:"accepted_count"`
	Jobs              []JobResponse       `json:"jobs"`
	Applications      []ApplicantResponse `json:"applications"`
}

type SavedToggleResponse struct {
	JobID uuid.UUID `json:"job_id"`
	Saved bool      `json:"saved"`
}

func NewApplicationResponse(a job.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		UserID:      a.UserID,
		Status:      a.Status,
		CoverLetter: a.CoverLetter,
		AppliedAt:   formatTime(a.AppliedAt),
	}
}

func NewApplicationListResponse(rows []repository.ApplicationRow) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(rows))
	for _, r := range rows {
		it := NewApplicationResponse(r.Application)
		it.JobTitle = r.JobTitle
		it.Company = r.Company
		it.Location = r.Location
		out = append(out, it)
	}
	return out
}

func NewDashboardResponse(d usecase.EmployerDashboard) DashboardResponse {
	apps := make([]ApplicantResponse, 0, len(d.Applications))
	for _, r := range d.Applications {
		it := ApplicantResponse{
			ApplicationResponse: NewApplicationResponse(r.Application),
			ApplicantName:       r.ApplicantName,
			ApplicantEmail:      r.ApplicantEmail,
		}
		it.JobTitle = r.JobTitle
		apps = append(apps, it)
	}
	return DashboardResponse{
		TotalJobs:         d.TotalJobs,
		ActiveJobs:        d.ActiveJobs,
		TotalApplications: d.TotalApplications,
		PendingCount:      d.PendingCount,
		AcceptedCount:     d.AcceptedCount,
		Jobs:              NewJobListResponse(d.Jobs),
		Applications:      apps,
	}
}
