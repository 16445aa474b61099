package handler

import (
	"errors"

	"career-match/internal/delivery/http/middleware"
	"career-match/internal/domain/user"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobListUsecase
}

func NewJobsHandler(uc usecase.JobListUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

// RegisterRoutes mounts the public job routes. /facets is registered before
// /:id so it is not captured as an id.
func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListJobs)
	r.Get("/facets", h.HandleFacets)
	r.Get("/:id", h.HandleGetJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	remote, err := parseQueryBoolStrict(c, "remote")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
		Skills:   user.SplitList(c.Query("skills")),
		Remote:   remote,
	})
	if err != nil {
		return mapJobListUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobsHandler) HandleFacets(c fiber.Ctx) error {
	f, err := h.uc.Facets(c.Context())
	if err != nil {
		return mapJobListUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, f)
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapJobListUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func mapJobListUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
