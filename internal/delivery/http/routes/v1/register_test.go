package v1

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"career-match/internal/delivery/http/handler"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/domain/job"
	"career-match/internal/repository"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("7b0f4f3e-8f6a-4c53-9d7e-1f2a3b4c5d6e")

type stubJobs struct {
	getCalls int
}

func (s *stubJobs) ListJobs(context.Context, usecase.JobListParams) ([]job.Job, error) {
	return []job.Job{{Title: "Backend Engineer"}}, nil
}

func (s *stubJobs) GetJob(_ context.Context, id uuid.UUID) (job.Job, error) {
	s.getCalls++
	return job.Job{ID: id, Title: "by id"}, nil
}

func (s *stubJobs) Facets(context.Context) (repository.JobFacets, error) {
	return repository.JobFacets{}, nil
}

type stubRecommend struct {
	matchCalls int
	userID     uuid.UUID
}

func (s *stubRecommend) GetRecommendations(context.Context, uuid.UUID) (usecase.Recommendations, error) {
	return usecase.Recommendations{}, nil
}

func (s *stubRecommend) GetJobMatches(_ context.Context, userID uuid.UUID) ([]usecase.RecommendedJob, error) {
	s.matchCalls++
	s.userID = userID
	return []usecase.RecommendedJob{{Job: job.Job{Title: "React Developer"}, MatchingSkills: []string{"React"}, MatchScore: 1, MatchPercentage: 50}}, nil
}

func newV1App(jobs *stubJobs, rec *stubRecommend, auth fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	Register(app.Group("/api/v1"), Handlers{
		Jobs:           handler.NewJobsHandler(jobs),
		Recommendation: handler.NewJobRecommendationHandler(rec, nil),
		AuthMiddleware: auth,
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRegister_JobMatchesNotCapturedByJobID(t *testing.T) {
	jobs := &stubJobs{}
	rec := &stubRecommend{}
	app := newV1App(jobs, rec, func(c fiber.Ctx) error {
		c.Locals(middleware.CtxUserIDKey, testUserID)
		return c.Next()
	})

	status, body := get(t, app, "/api/v1/jobs/matches")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, rec.matchCalls)
	assert.Equal(t, testUserID, rec.userID)
	assert.Equal(t, 0, jobs.getCalls)

	items, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "React Developer", items[0].(map[string]any)["title"])

	id := uuid.New()
	status, body = get(t, app, "/api/v1/jobs/"+id.String())
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, jobs.getCalls)
	assert.Equal(t, id.String(), body["data"].(map[string]any)["id"])

	status, _ = get(t, app, "/api/v1/jobs")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRegister_JobMatchesRequiresAuth(t *testing.T) {
	jobs := &stubJobs{}
	rec := &stubRecommend{}
	app := newV1App(jobs, rec, func(fiber.Ctx) error {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	})

	status, _ := get(t, app, "/api/v1/jobs/matches")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, 0, rec.matchCalls)
	assert.Equal(t, 0, jobs.getCalls)

	status, _ = get(t, app, "/api/v1/jobs")
	assert.Equal(t, fiber.StatusOK, status, "listing stays public")
}
