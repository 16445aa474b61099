package usecase

import (
	"context"
	"log"

	"career-match/internal/domain/job"
	"career-match/internal/domain/resource"
	"career-match/internal/repository"

	"golang.org/x/sync/errgroup"
)

// Catalog serves read-through snapshots of the job and resource catalogues.
type Catalog struct {
	jobs      repository.JobRepository
	resources repository.ResourceRepository
	cache     SearchCache
	logger    *log.Logger
}

func NewCatalog(jobs repository.JobRepository, resources repository.ResourceRepository, cache SearchCache, logger *log.Logger) *Catalog {
	return &Catalog{jobs: jobs, resources: resources, cache: cache, logger: logger}
}

func (c *Catalog) Jobs(ctx context.Context) ([]job.Job, error) {
	return readThrough(ctx, c, CatalogJobsKey, c.jobs.ListAll)
}

func (c *Catalog) Resources(ctx context.Context) ([]resource.Resource, error) {
	return readThrough(ctx, c, CatalogResourcesKey, c.resources.ListAll)
}

// Snapshot loads both catalogues concurrently.
func (c *Catalog) Snapshot(ctx context.Context) ([]job.Job, []resource.Resource, error) {
	var jobs []job.Job
	var resources []resource.Resource

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = c.Jobs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		resources, err = c.Resources(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return jobs, resources, nil
}

func (c *Catalog) InvalidateJobs(ctx context.Context) {
	if c.cache == nil {
		return
	}
	_ = c.cache.Delete(ctx, CatalogJobsKey, JobFacetsKey)
	_ = c.cache.DeleteByPattern(ctx, jobsSearchPrefix+"*")
	_ = c.cache.DeleteByPattern(ctx, jobsLockPrefix+"*")
	c.logf("[Cache] invalidated job catalogue")
}

func (c *Catalog) InvalidateResources(ctx context.Context) {
	if c.cache == nil {
		return
	}
	_ = c.cache.Delete(ctx, CatalogResourcesKey)
	c.logf("[Cache] invalidated resource catalogue")
}

func (c *Catalog) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func readThrough[T any](ctx context.Context, c *Catalog, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if c.cache != nil {
		var cached []T
		hit, err := c.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			c.logf("[Catalog] Cache HIT: %s", key)
			return cached, nil
		}
		c.logf("[Catalog] Cache MISS: %s", key)
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.SetJSON(ctx, key, items, 0); err == nil {
			c.logf("[Catalog] Cache SET: %s", key)
		}
	}
	return items, nil
}
