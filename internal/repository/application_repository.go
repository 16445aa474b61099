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
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied")
)

type ApplicationRepository interface {
	Create(ctx context.Context, userID, jobID uuid.UUID, notes string) (job.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]job.Application, error)
	UpdateStatus(ctx context.Context, userID, applicationID uuid.UUID, status string) (job.Application, error)
	AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, userID, jobID uuid.UUID, notes string) (job.Application, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, job_id, status, notes) VALUES ($1, $2, $3, $4, $5)`,
		id, userID, jobID, job.ApplicationApplied, notes,
	)
	if err != nil {
		switch {
		case postgres.IsUniqueViolation(err):
			return job.Application{}, ErrAlreadyApplied
		case postgres.IsForeignKeyViolation(err):
			return job.Application{}, ErrJobNotFound
		}
		return job.Application{}, err
	}
	return r.get(ctx, userID, id)
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]job.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.user_id, a.job_id, j.title, j.company, a.applied_at, a.status, a.notes
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.user_id = $1
		 ORDER BY a.applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus only touches applications owned by userID; anything else
// reports ErrApplicationNotFound.
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, userID, applicationID uuid.UUID, status string) (job.Application, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $3, updated_at = now() WHERE id = $1 AND user_id = $2`,
		applicationID, userID, status,
	)
	if err != nil {
		return job.Application{}, err
	}
	if affected == 0 {
		return job.Application{}, ErrApplicationNotFound
	}
	return r.get(ctx, userID, applicationID)
}

func (r *PostgresApplicationRepository) AppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return scanIDs(ctx, r.db, `SELECT job_id FROM applications WHERE user_id = $1 ORDER BY applied_at DESC`, userID)
}

func (r *PostgresApplicationRepository) get(ctx context.Context, userID, id uuid.UUID) (job.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT a.id, a.user_id, a.job_id, j.title, j.company, a.applied_at, a.status, a.notes
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.id = $1 AND a.user_id = $2`,
		id, userID,
	)
	a, err := scanApplication(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return job.Application{}, ErrApplicationNotFound
		}
		return job.Application{}, err
	}
	return a, nil
}

func scanApplication(row database.Row) (job.Application, error) {
	var a job.Application
	err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.JobTitle, &a.Company, &a.AppliedAt, &a.Status, &a.Notes)
	return a, err
}
