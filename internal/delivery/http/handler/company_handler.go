package handler

import (
	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/pkg/response"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	companies usecase.CompanyUsecase
}

func NewCompanyHandler(companies usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// RegisterRoutes mounts the public profile and the authenticated review
// endpoint under the given /companies group.
func (h *CompanyHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/:id", h.HandleGet)
	r.Post("/:id/reviews", auth, h.HandleReview)
}

func (h *CompanyHandler) HandleGet(c fiber.Ctx) error {
	p, err := h.companies.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewCompanyProfileResponse(p))
}

func (h *CompanyHandler) HandleReview(c fiber.Ctx) error {
	var req dto.ReviewCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	rv, err := h.companies.Review(c.Context(), middleware.UserID(c), c.Params("id"), req.Rating, req.Comment)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Review submitted", dto.NewCompanyReviewResponse(rv))
}
