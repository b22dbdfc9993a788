// Package v1 mounts the /api/v1 handlers.
package v1

import (
	"jobhunt/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth           *handler.AuthHandler
	Jobs           *handler.JobsHandler
	Recommendation *handler.JobRecommendationHandler
	Application    *handler.ApplicationHandler
	Profile        *handler.ProfileHandler
	Employer       *handler.EmployerHandler
	Company        *handler.CompanyHandler
}

// Register mounts public routes first; everything registered after the
// protected group goes through auth. Under /jobs the recommendation route
// precedes /jobs/:id so it is not captured as an id.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	jobs := r.Group("/jobs")
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(jobs, auth)
	}
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(jobs, auth)
	}

	if h.Company != nil {
		h.Company.RegisterRoutes(r.Group("/companies"), auth)
	}

	protected := r.Group("", auth)
	if h.Profile != nil {
		h.Profile.RegisterRoutes(protected)
	}
	if h.Application != nil {
		h.Application.RegisterRoutes(protected)
	}
	if h.Employer != nil {
		h.Employer.RegisterRoutes(protected)
	}
}
