package handler

import (
	"errors"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"
	useruc "career-match/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetProfile)
	r.Put("/", h.UpdateProfile)
	r.Post("/experience", h.AddExperience)
	r.Get("/completeness", h.GetCompleteness)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	usr, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, req.Input())
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated successfully", dto.NewUserResponse(usr))
}

func (h *UserHandler) AddExperience(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.ExperienceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	usr, err := h.uc.AddExperience(c.Context(), userID, req.Experience())
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Experience added", dto.NewUserResponse(usr))
}

func (h *UserHandler) GetCompleteness(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	score, err := h.uc.Completeness(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CompletenessResponse{Completeness: score})
}

func mapUserUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, useruc.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, useruc.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
