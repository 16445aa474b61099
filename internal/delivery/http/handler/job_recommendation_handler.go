package handler

import (
	"errors"

	"career-match/internal/delivery/http/middleware"
	"career-match/internal/domain/matching"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc        usecase.JobRecommendationUsecase
	dashboard usecase.DashboardUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase, dashboard usecase.DashboardUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc, dashboard: dashboard}
}

// RegisterRoutes must run before the public job routes so /jobs/matches is
// not captured by /jobs/:id.
func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil || auth == nil {
		return
	}
	r.Get("/recommendations", auth, h.GetRecommendations)
	r.Get("/dashboard", auth, h.GetDashboard)
	r.Get("/jobs/matches", auth, h.GetJobMatches)
}

func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	rec, err := h.uc.GetRecommendations(c.Context(), userID)
	if err != nil {
		return mapJobRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rec)
}

func (h *JobRecommendationHandler) GetJobMatches(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.GetJobMatches(c.Context(), userID)
	if err != nil {
		return mapJobRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobRecommendationHandler) GetDashboard(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if h.dashboard == nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Dashboard unavailable", nil, nil)
	}

	d, err := h.dashboard.GetDashboard(c.Context(), userID)
	if err != nil {
		return mapJobRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, d)
}

func mapJobRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, matching.ErrInvalidProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
