package handler

import (
	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/pkg/response"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	applications usecase.ApplicationUsecase
	saved        usecase.SavedJobUsecase
}

func NewApplicationHandler(applications usecase.ApplicationUsecase, saved usecase.SavedJobUsecase) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, saved: saved}
}

// RegisterRoutes expects an authenticated router.
func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs/:id/apply", h.HandleApply)
	r.Post("/jobs/:id/save", h.HandleToggleSave)
	r.Get("/me/applications", h.HandleListMine)
	r.Get("/me/saved-jobs", h.HandleListSaved)
	r.Patch("/applications/:id/status", h.HandleUpdateStatus)
}

func (h *ApplicationHandler) HandleApply(c fiber.Ctx) error {
	var req dto.ApplyRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return badRequest(err)
		}
	}

	a, err := h.applications.Apply(c.Context(), middleware.UserID(c), c.Params("id"), req.CoverLetter)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) HandleListMine(c fiber.Ctx) error {
	rows, err := h.applications.ListMine(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewApplicationListResponse(rows))
}

func (h *ApplicationHandler) HandleUpdateStatus(c fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	a, err := h.applications.UpdateStatus(c.Context(), middleware.UserID(c), c.Params("id"), req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application updated", dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) HandleToggleSave(c fiber.Ctx) error {
	saved, err := h.saved.Toggle(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := "Job removed from saved"
	if saved {
		msg = "Job saved"
	}
	jobID, _ := uuid.Parse(c.Params("id"))
	return response.Success(c, fiber.StatusOK, msg, dto.SavedToggleResponse{JobID: jobID, Saved: saved})
}

func (h *ApplicationHandler) HandleListSaved(c fiber.Ctx) error {
	items, err := h.saved.ListMine(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewJobListResponse(items))
}
