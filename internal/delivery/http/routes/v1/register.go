package v1

import (
	"career-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups everything mounted under /api/v1. Auth guards the
// per-user routes.
type Handlers struct {
	Auth           *handler.AuthHandler
	User           *handler.UserHandler
	Jobs           *handler.JobsHandler
	Recommendation *handler.JobRecommendationHandler
	Resources      *handler.ResourceHandler
	Applications   *handler.ApplicationHandler

	AuthMiddleware fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil || h.AuthMiddleware == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	RegisterUsers(r, h.User, h.AuthMiddleware)
	RegisterJobs(r, h.Jobs, h.Recommendation, h.AuthMiddleware)

	if h.Resources != nil {
		h.Resources.RegisterRoutes(r.Group("/resources"), h.AuthMiddleware)
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(r.Group("/applications", h.AuthMiddleware))
	}
}
