package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-match/internal/config"
	"career-match/internal/delivery/http/handler"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/delivery/http/routes"
	v1 "career-match/internal/delivery/http/routes/v1"
	"career-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Version = "1.0.0"

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects the stores, applies migrations and starts the
// websocket hub. The returned cleanup stops the hub and closes the stores.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	n, err := c.Migrate(migCtx)
	if err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}
	c.Logger.Printf("migrations applied: %d", n)

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: splitOrigins(c.Config.App.CORSOrigins),
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
	}))
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewMetricsMiddleware(c.Metrics).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(c.JWT)

	api := v1.Handlers{
		Auth:           handler.NewAuthHandler(c.AuthUC),
		User:           handler.NewUserHandler(c.UserUC),
		Jobs:           handler.NewJobsHandler(c.JobListUC),
		Recommendation: handler.NewJobRecommendationHandler(c.RecommendUC, c.DashboardUC),
		Resources:      handler.NewResourceHandler(c.ResourceUC),
		Applications:   handler.NewApplicationHandler(c.ApplicationUC),
		AuthMiddleware: authMw.Middleware(),
	}

	reg := routes.NewRegistry(
		handler.NewHealthHandler(c.Config.App.AppName, Version, c.DB),
		ws.NewHandler(c.Hub, c.Logger),
		promhttp.HandlerFor(c.Metrics.Registry, promhttp.HandlerOpts{Registry: c.Metrics.Registry}),
		api,
	)
	reg.Register(app)
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
