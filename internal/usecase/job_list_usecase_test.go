package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-match/internal/config"
	"career-match/internal/domain/job"
	rediscache "career-match/internal/infrastructure/cache"
	"career-match/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobList(jobs *memJobs, cache SearchCache) *JobList {
	catalog := NewCatalog(jobs, newMemResources(), cache, nil)
	uc := NewJobListUsecase(jobs, catalog, cache, nil)
	uc.lockWait = 0
	return uc
}

func TestJobListUsecase_ListJobs_InvalidJobType(t *testing.T) {
	uc := newJobList(&memJobs{}, nil)
	_, err := uc.ListJobs(context.Background(), JobListParams{JobType: "Weekend"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobListUsecase_ListJobs_NoFilterUsesCatalog(t *testing.T) {
	jobs := &memJobs{items: []job.Job{newJob("Backend Engineer", "Go"), newJob("Designer", "Figma")}}
	cache := newMemCache()
	uc := newJobList(jobs, cache)

	items, err := uc.ListJobs(context.Background(), JobListParams{Skills: []string{" ", ""}})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, jobs.allCalls)
	assert.Equal(t, 0, jobs.listCalls)
	assert.True(t, cache.has(CatalogJobsKey))

	_, err = uc.ListJobs(context.Background(), JobListParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, jobs.allCalls, "second call served from the catalogue cache")
}

func TestJobListUsecase_ListJobs_FilteredIsCached(t *testing.T) {
	jobs := &memJobs{items: []job.Job{newJob("Backend Engineer", "Go"), newJob("Designer", "Figma")}}
	cache := newMemCache()
	uc := newJobList(jobs, cache)
	remote := true

	params := JobListParams{Query: "backend", Skills: []string{" go "}, Remote: &remote}
	items, err := uc.ListJobs(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Backend Engineer", items[0].Title)
	assert.Equal(t, []string{"go"}, jobs.lastList.Skills)
	require.NotNil(t, jobs.lastList.Remote)

	key := JobsSearchCacheKey(params)
	assert.True(t, cache.has(key))
	assert.False(t, cache.has(JobsSearchLockKey(key)), "lock released after fill")

	again, err := uc.ListJobs(context.Background(), JobListParams{Query: " BACKEND ", Skills: []string{"go"}, Remote: &remote})
	require.NoError(t, err)
	assert.Equal(t, items, again)
	assert.Equal(t, 1, jobs.listCalls)
}

func TestJobListUsecase_ListJobs_LockHeldFallsBackToRepo(t *testing.T) {
	jobs := &memJobs{items: []job.Job{newJob("Backend Engineer", "Go")}}
	cache := newMemCache()
	uc := newJobList(jobs, cache)

	params := JobListParams{Query: "backend"}
	_, _ = cache.SetIfNotExists(context.Background(), JobsSearchLockKey(JobsSearchCacheKey(params)), "1", 0)

	items, err := uc.ListJobs(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, jobs.listCalls)
}

func TestJobListUsecase_ListJobs_RedisDownSkipsLockWait(t *testing.T) {
	redis := rediscache.NewRedis(config.RedisConfig{Host: "127.0.0.1", Port: "1"}, nil)
	t.Cleanup(func() { _ = redis.Close() })

	jobs := &memJobs{items: []job.Job{newJob("Backend Engineer", "Go"), newJob("Designer", "Figma")}}
	catalog := NewCatalog(jobs, newMemResources(), redis, nil)
	uc := NewJobListUsecase(jobs, catalog, redis, nil)
	uc.lockWait = 5 * time.Second

	start := time.Now()
	for i := 0; i < 3; i++ {
		items, err := uc.ListJobs(context.Background(), JobListParams{Query: "back"})
		require.NoError(t, err)
		require.Len(t, items, 1)
	}
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, 3, jobs.listCalls)
}

func TestJobListUsecase_ListJobs_RepoError(t *testing.T) {
	uc := newJobList(&memJobs{err: errBoom}, nil)
	_, err := uc.ListJobs(context.Background(), JobListParams{Query: "x"})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.ListJobs(context.Background(), JobListParams{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestJobListUsecase_GetJob(t *testing.T) {
	j := newJob("Data Engineer", "Python")
	uc := newJobList(&memJobs{items: []job.Job{j}}, nil)

	got, err := uc.GetJob(context.Background(), j.ID)
	require.NoError(t, err)
	assert.Equal(t, j.Title, got.Title)

	_, err = uc.GetJob(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = uc.GetJob(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobListUsecase_Facets(t *testing.T) {
	cache := newMemCache()
	uc := newJobList(&memJobs{}, cache)

	f, err := uc.Facets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repository.JobFacets{Skills: []string{"Go"}, Locations: []string{"Dhaka"}, JobTypes: []string{job.TypeFullTime}}, f)
	assert.True(t, cache.has(JobFacetsKey))
}

func TestJobsSearchCacheKey(t *testing.T) {
	yes, no := true, false
	base := JobsSearchCacheKey(JobListParams{Query: "React  Dev", Skills: []string{"Node", "react"}, Remote: &yes})

	assert.Equal(t, base, JobsSearchCacheKey(JobListParams{Query: " react dev ", Skills: []string{"REACT", " node", ""}, Remote: &yes}))
	assert.NotEqual(t, base, JobsSearchCacheKey(JobListParams{Query: "react dev", Skills: []string{"node", "react"}, Remote: &no}))
	assert.NotEqual(t, base, JobsSearchCacheKey(JobListParams{Query: "react dev", Skills: []string{"node", "react"}}))

	assert.NotEqual(t,
		JobsSearchCacheKey(JobListParams{JobType: "Full-time"}),
		JobsSearchCacheKey(JobListParams{JobType: "full-time"}),
	)

	key := JobsSearchCacheKey(JobListParams{Query: "x"})
	assert.Contains(t, key, "jobs:search:")
	assert.Equal(t, "jobs:lock:"+key[len("jobs:search:"):], JobsSearchLockKey(key))
}
