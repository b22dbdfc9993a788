package handler

import (
	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/pkg/response"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

// RegisterRoutes must run before the /jobs/:id routes so "recommendations"
// is not taken as an id.
func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/recommendations", auth, h.HandleRecommendations)
}

func (h *JobRecommendationHandler) HandleRecommendations(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return badRequest(err)
	}

	items, err := h.uc.GetRecommendations(c.Context(), middleware.UserID(c), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewRecommendationListResponse(items))
}
