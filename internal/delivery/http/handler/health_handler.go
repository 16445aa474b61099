package handler

import (
	"context"
	"time"

	"career-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	dbConnected    = "Connected"
	dbDisconnected = "Disconnected"
)

var apiFeatures = []string{
	"Authentication",
	"Job Listings",
	"User Profiles",
	"Skill Matching",
	"Learning Resources",
	"Job Applications",
	"Resource Enrollments",
	"Live Updates",
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	name    string
	version string
	db      Pinger
	started time.Time
	now     func() time.Time
}

func NewHealthHandler(name, version string, db Pinger) *HealthHandler {
	return &HealthHandler{name: name, version: version, db: db, started: time.Now(), now: time.Now}
}

func (h *HealthHandler) RegisterRoutes(app fiber.Router) {
	if app == nil {
		return
	}

	app.Get("/health", h.Liveness)
	app.Get("/api", h.Info)
	app.Get("/api/health", h.Health)
}

func (h *HealthHandler) Liveness(c fiber.Ctx) error {
	return c.SendString("ok")
}

func (h *HealthHandler) Info(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, h.name+" API is running", fiber.Map{
		"name":     h.name,
		"version":  h.version,
		"database": h.dbStatus(c.Context()),
		"features": apiFeatures,
	})
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	now := h.now()
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":        "OK",
		"timestamp":     now.UTC().Format(time.RFC3339),
		"database":      h.dbStatus(c.Context()),
		"uptimeSeconds": int64(now.Sub(h.started).Seconds()),
	})
}

func (h *HealthHandler) dbStatus(ctx context.Context) string {
	if h.db == nil {
		return dbDisconnected
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return dbDisconnected
	}
	return dbConnected
}
