package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"career-match/internal/observability"
	"career-match/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func get(t *testing.T, app *fiber.App, path, auth string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestErrorMiddleware_HidesServerErrors(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(quietLogger()).Middleware())
	app.Get("/conflict", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "", map[string]string{"field": "email"}, nil)
	})
	app.Get("/boom", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db password leaked", nil, errors.New("pq: secret"))
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("plain failure")
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("kaboom")
	})

	status, body := get(t, app, "/conflict", "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "conflict", body["message"])
	assert.Equal(t, map[string]any{"field": "email"}, body["data"])

	for _, path := range []string{"/boom", "/plain", "/panic"} {
		status, body = get(t, app, path, "")
		assert.Equal(t, fiber.StatusInternalServerError, status, path)
		assert.Equal(t, "internal server error", body["message"], path)
		assert.Nil(t, body["data"], path)
	}

	status, _ = get(t, app, "/missing", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("career-match", "access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	app := fiber.New()
	app.Use(NewErrorMiddleware(quietLogger()).Middleware())
	app.Get("/me", NewAuthMiddleware(svc).Middleware(), func(c fiber.Ctx) error {
		id, ok := UserIDFromCtx(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "", nil, nil)
		}
		return c.SendString(id.String())
	})

	access, err := svc.GenerateAccessToken(userID, "a@example.com")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, userID.String(), string(raw))

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic " + access,
		"refresh token":  "Bearer " + refresh,
		"garbage":        "Bearer not.a.token",
	}
	for name, header := range cases {
		status, _ := get(t, app, "/me", header)
		assert.Equal(t, fiber.StatusUnauthorized, status, name)
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	tok, ok := bearerTokenFromHeader("  bearer   abc  ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerTokenFromHeader("Bearer ")
	assert.False(t, ok)
}

func TestMetricsMiddleware_LabelsByRoute(t *testing.T) {
	m := observability.NewMetricsCollector(nil)

	app := fiber.New()
	app.Use(NewErrorMiddleware(quietLogger()).Middleware())
	app.Use(NewMetricsMiddleware(m).Middleware())
	app.Get("/jobs/:id", func(c fiber.Ctx) error {
		if c.Params("id") == "missing" {
			return NewAppError(fiber.StatusNotFound, "", nil, nil)
		}
		return c.SendString("ok")
	})

	get(t, app, "/jobs/1", "")
	get(t, app, "/jobs/2", "")
	get(t, app, "/jobs/missing", "")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/jobs/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/jobs/:id", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ActiveRequests))
}

func TestAccessLogMiddleware_SetsRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(quietLogger()).Middleware())
	app.Get("/", func(c fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()
	_, err = uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "given")
	resp, err = app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "given", resp.Header.Get("X-Request-ID"))
}
