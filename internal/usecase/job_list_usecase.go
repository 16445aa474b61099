package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-match/internal/domain/job"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrJobNotFound  = errors.New("job not found")
)

type JobListParams struct {
	Query    string
	Location string
	JobType  string
	Skills   []string
	Remote   *bool
}

func (p JobListParams) hasFilter() bool {
	if strings.TrimSpace(p.Query) != "" || strings.TrimSpace(p.Location) != "" || strings.TrimSpace(p.JobType) != "" {
		return true
	}
	return len(p.Skills) > 0 || p.Remote != nil
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	Facets(ctx context.Context) (repository.JobFacets, error)
}

type JobList struct {
	jobs    repository.JobRepository
	catalog *Catalog
	cache   SearchCache
	logger  *log.Logger

	lockWait time.Duration
}

func NewJobListUsecase(jobs repository.JobRepository, catalog *Catalog, cache SearchCache, logger *log.Logger) *JobList {
	return &JobList{jobs: jobs, catalog: catalog, cache: cache, logger: logger, lockWait: 300 * time.Millisecond}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error) {
	jobType := strings.TrimSpace(params.JobType)
	if jobType != "" && !job.IsValidType(jobType) {
		return nil, ErrInvalidInput
	}

	skills := make([]string, 0, len(params.Skills))
	for _, s := range params.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	params.JobType = jobType
	params.Skills = skills

	if !params.hasFilter() {
		out, err := u.catalog.Jobs(ctx)
		if err != nil {
			return nil, ErrInternal
		}
		return out, nil
	}

	cacheKey := JobsSearchCacheKey(params)
	lockKey := JobsSearchLockKey(cacheKey)

	if cached, ok := u.cached(ctx, cacheKey); ok {
		return cached, nil
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		switch {
		case err == nil && ok:
			lockAcquired = true
			u.logf("[Jobs] Lock acquired: %s", lockKey)
		case err == nil && !ok:
			jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(u.lockWait + jitter):
			}
			if cached, ok := u.cached(ctx, cacheKey); ok {
				return cached, nil
			}
			u.logf("[Jobs] Lock wait fallback: %s", lockKey)
		}
	}

	out, err := u.jobs.List(ctx, repository.JobListFilter{
		Query:    params.Query,
		Location: params.Location,
		JobType:  params.JobType,
		Skills:   skills,
		Remote:   params.Remote,
	})
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err == nil {
			u.logf("[Jobs] Cache SET: %s", cacheKey)
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

func (u *JobList) GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	if jobID == uuid.Nil {
		return job.Job{}, ErrInvalidInput
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *JobList) Facets(ctx context.Context) (repository.JobFacets, error) {
	if u.cache != nil {
		var cached repository.JobFacets
		if hit, err := u.cache.GetJSON(ctx, JobFacetsKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	f, err := u.jobs.Facets(ctx)
	if err != nil {
		return repository.JobFacets{}, ErrInternal
	}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, JobFacetsKey, f, 0)
	}
	return f, nil
}

func (u *JobList) cached(ctx context.Context, key string) ([]job.Job, bool) {
	if u.cache == nil {
		return nil, false
	}
	var cached []job.Job
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err == nil && hit {
		u.logf("[Jobs] Cache HIT: %s", key)
		return cached, true
	}
	u.logf("[Jobs] Cache MISS: %s", key)
	return nil, false
}

func (u *JobList) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
