package handler

import (
	"errors"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResourceHandler struct {
	uc usecase.ResourceUsecase
}

func NewResourceHandler(uc usecase.ResourceUsecase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

// RegisterRoutes mounts the catalogue reads as public routes and guards the
// writes with auth.
func (h *ResourceHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil || auth == nil {
		return
	}

	r.Get("/my-enrollments", auth, h.MyEnrollments)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", auth, h.Create)
	r.Put("/:id", auth, h.Update)
	r.Delete("/:id", auth, h.Delete)
	r.Post("/:id/enroll", auth, h.Enroll)
}

func (h *ResourceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ResourceHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	r, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, r)
}

func (h *ResourceHandler) Create(c fiber.Ctx) error {
	var req dto.ResourceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	r, err := h.uc.Create(c.Context(), req.Input())
	if err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Resource created", r)
}

func (h *ResourceHandler) Update(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ResourceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	r, err := h.uc.Update(c.Context(), id, req.Input())
	if err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Resource updated", r)
}

func (h *ResourceHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Resource deleted", nil)
}

func (h *ResourceHandler) Enroll(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	count, err := h.uc.Enroll(c.Context(), userID, id)
	if err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Successfully enrolled", dto.EnrollResponse{ResourceID: id, EnrolledCount: count})
}

func (h *ResourceHandler) MyEnrollments(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	items, err := h.uc.MyEnrollments(c.Context(), userID)
	if err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func mapResourceUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrResourceNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resource not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyEnrolled):
		return middleware.NewAppError(fiber.StatusConflict, "Already enrolled in this resource", nil, err)
	case errors.Is(err, usecase.ErrDuplicateURL):
		return middleware.NewAppError(fiber.StatusConflict, "Resource URL already exists", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
