package routes

import (
	"net/http"

	"career-match/internal/delivery/http/handler"
	v1 "career-match/internal/delivery/http/routes/v1"
	"career-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health  *handler.HealthHandler
	ws      *ws.Handler
	metrics http.Handler
	v1      v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, wsHandler *ws.Handler, metrics http.Handler, api v1.Handlers) *Registry {
	return &Registry{health: health, ws: wsHandler, metrics: metrics, v1: api}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerMetrics(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerMetrics(app *fiber.App) {
	if r.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		app.Get("/ws/updates", r.ws.HandleUpdates)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
