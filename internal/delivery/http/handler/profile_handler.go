package handler

import (
	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/pkg/response"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me/profile", h.HandleGet)
	r.Put("/me/profile", h.HandleUpdate)
}

func (h *ProfileHandler) HandleGet(c fiber.Ctx) error {
	p, err := h.uc.GetProfile(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewProfileResponse(p))
}

func (h *ProfileHandler) HandleUpdate(c fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	p, err := h.uc.UpdateProfile(c.Context(), middleware.UserID(c), req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", dto.NewProfileResponse(p))
}
