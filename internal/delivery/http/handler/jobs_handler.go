package handler

import (
	"fmt"
	"strconv"
	"strings"

	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/delivery/http/middleware"
	"jobhunt/internal/pkg/response"
	"jobhunt/internal/search"
	"jobhunt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	search  usecase.JobSearchUsecase
	posting usecase.JobPostingUsecase
}

func NewJobsHandler(search usecase.JobSearchUsecase, posting usecase.JobPostingUsecase) *JobsHandler {
	return &JobsHandler{search: search, posting: posting}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleSearch)
	r.Post("/", auth, h.HandleCreate)
	r.Get("/:id", h.HandleGet)
	r.Delete("/:id", auth, h.HandleDeactivate)
}

func (h *JobsHandler) HandleSearch(c fiber.Ctx) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return badRequest(err)
	}

	items, err := h.search.Search(c.Context(), criteria)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewJobListResponse(items))
}

func (h *JobsHandler) HandleGet(c fiber.Ctx) error {
	p, err := h.search.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewJobResponse(p))
}

func (h *JobsHandler) HandleCreate(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	p, err := h.posting.Create(c.Context(), middleware.UserID(c), usecase.CreateJobInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Salary:         req.Salary,
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Benefits:       req.Benefits,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job posted", dto.NewJobResponse(p))
}

func (h *JobsHandler) HandleDeactivate(c fiber.Ctx) error {
	if err := h.posting.Deactivate(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deactivated", nil)
}

func criteriaFromQuery(c fiber.Ctx) (search.Criteria, error) {
	cr := search.Criteria{
		Title:           c.Query("title"),
		Location:        c.Query("location"),
		JobType:         c.Query("type"),
		SalaryMin:       c.Query("salary_min"),
		SalaryMax:       c.Query("salary_max"),
		ExperienceLevel: c.Query("experience"),
		Skills:          c.Query("skills"),
	}

	var err error
	if cr.SalaryFrom, err = parseOptionalInt64(c.Query("salary_from")); err != nil {
		return search.Criteria{}, fmt.Errorf("salary_from: %w", err)
	}
	if cr.SalaryTo, err = parseOptionalInt64(c.Query("salary_to")); err != nil {
		return search.Criteria{}, fmt.Errorf("salary_to: %w", err)
	}
	return cr, nil
}

func parseOptionalInt64(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	if v < 0 {
		return nil, fmt.Errorf("must not be negative")
	}
	return &v, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
