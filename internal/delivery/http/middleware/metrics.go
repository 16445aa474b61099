package middleware

import (
	"strconv"
	"time"

	"career-match/internal/observability"

	"github.com/gofiber/fiber/v3"
)

type MetricsMiddleware struct {
	metrics *observability.MetricsCollector
}

func NewMetricsMiddleware(metrics *observability.MetricsCollector) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Middleware labels requests by route pattern, not raw path, so ids do not
// explode the label space. Unmatched requests are grouped under "unmatched".
func (m *MetricsMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.metrics == nil {
			return c.Next()
		}

		m.metrics.ActiveRequests.Inc()
		defer m.metrics.ActiveRequests.Dec()

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err, status)
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		} else if c.Path() == "/" {
			route = "/"
		}

		method := c.Method()
		m.metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// statusFromError predicts the status the error middleware will render.
func statusFromError(err error, fallback int) int {
	status, _, _ := normalizeError(err)
	if status <= 0 {
		return fallback
	}
	return status
}
