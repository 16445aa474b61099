package repository

import (
	"context"
	"errors"

	"career-match/internal/database"
	"career-match/internal/database/postgres"
	"career-match/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListAll(ctx context.Context) ([]job.Job, error)
	List(ctx context.Context, f JobListFilter) ([]job.Job, error)
	Facets(ctx context.Context) (JobFacets, error)
}

type JobFacets struct {
	Skills    []string `json:"skills"`
	Locations []string `json:"locations"`
	JobTypes  []string `json:"jobTypes"`
}

const jobColumns = `id, title, company, location, remote, required_skills, experience_level, job_type,
	description, created_at, updated_at`

const jobOrder = ` ORDER BY created_at DESC, title ASC, id ASC`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		if postgres.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	j, err := scanJob(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs`+jobOrder)
}

func (r *PostgresJobRepository) List(ctx context.Context, f JobListFilter) ([]job.Job, error) {
	where, args := f.whereClause()
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs`+where+jobOrder, args...)
}

func (r *PostgresJobRepository) Facets(ctx context.Context) (JobFacets, error) {
	var out JobFacets
	var err error

	if out.Skills, err = r.distinct(ctx, `SELECT DISTINCT s FROM jobs, unnest(required_skills) AS s WHERE s <> '' ORDER BY s`); err != nil {
		return JobFacets{}, err
	}
	if out.Locations, err = r.distinct(ctx, `SELECT DISTINCT location FROM jobs WHERE location <> '' ORDER BY location`); err != nil {
		return JobFacets{}, err
	}
	if out.JobTypes, err = r.distinct(ctx, `SELECT DISTINCT job_type FROM jobs WHERE job_type <> '' ORDER BY job_type`); err != nil {
		return JobFacets{}, err
	}
	return out, nil
}

func (r *PostgresJobRepository) query(ctx context.Context, sql string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) distinct(ctx context.Context, sql string) ([]string, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Remote, &j.RequiredSkills, &j.ExperienceLevel,
		&j.JobType, &j.Description, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.RequiredSkills = nonNil(j.RequiredSkills)
	return j, nil
}
