package v1

import (
	"career-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobsHandler *handler.JobsHandler, recommendationHandler *handler.JobRecommendationHandler, auth fiber.Handler) {
	if r == nil {
		return
	}

	if recommendationHandler != nil {
		recommendationHandler.RegisterRoutes(r, auth)
	}
	if jobsHandler != nil {
		jobsHandler.RegisterRoutes(r.Group("/jobs"))
	}
}
