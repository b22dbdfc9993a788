package handler

import (
	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/pkg/response"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployerHandler struct {
	uc usecase.JobPostingUsecase
}

func NewEmployerHandler(uc usecase.JobPostingUsecase) *EmployerHandler {
	return &EmployerHandler{uc: uc}
}

func (h *EmployerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/employer/dashboard", h.HandleDashboard)
}

func (h *EmployerHandler) HandleDashboard(c fiber.Ctx) error {
	d, err := h.uc.EmployerDashboard(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewDashboardResponse(d))
}
