package repository

import (
	"context"
	"errors"

	"career-match/internal/database"
	"career-match/internal/database/postgres"
	"career-match/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrAlreadyEnrolled  = errors.New("already enrolled")
	ErrDuplicateURL     = errors.New("resource url already exists")
)

type ResourceRepository interface {
	ListAll(ctx context.Context) ([]resource.Resource, error)
	GetByID(ctx context.Context, id uuid.UUID) (resource.Resource, error)
	Create(ctx context.Context, r resource.Resource) (resource.Resource, error)
	Update(ctx context.Context, r resource.Resource) (resource.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Enroll(ctx context.Context, userID, resourceID uuid.UUID) (int, error)
	ListEnrollments(ctx context.Context, userID uuid.UUID) ([]resource.Enrollment, error)
	EnrolledResourceIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

const resourceColumns = `id, title, platform, url, related_skills, cost, description, enrolled_count, created_at, updated_at`

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

func (r *PostgresResourceRepository) ListAll(ctx context.Context) ([]resource.Resource, error) {
	rows, err := r.db.Query(ctx, `SELECT `+resourceColumns+` FROM resources ORDER BY created_at ASC, title ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resource.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (resource.Resource, error) {
	return getResource(ctx, r.db, id, false)
}

func (r *PostgresResourceRepository) Create(ctx context.Context, res resource.Resource) (resource.Resource, error) {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO resources (id, title, platform, url, related_skills, cost, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+resourceColumns,
		res.ID, res.Title, res.Platform, res.URL, nonNil(res.RelatedSkills), res.Cost, res.Description,
	)
	created, err := scanResource(row)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return resource.Resource{}, ErrDuplicateURL
		}
		return resource.Resource{}, err
	}
	return created, nil
}

func (r *PostgresResourceRepository) Update(ctx context.Context, res resource.Resource) (resource.Resource, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE resources SET
			title = $2, platform = $3, url = $4, related_skills = $5, cost = $6, description = $7,
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+resourceColumns,
		res.ID, res.Title, res.Platform, res.URL, nonNil(res.RelatedSkills), res.Cost, res.Description,
	)
	updated, err := scanResource(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return resource.Resource{}, ErrResourceNotFound
		}
		if postgres.IsUniqueViolation(err) {
			return resource.Resource{}, ErrDuplicateURL
		}
		return resource.Resource{}, err
	}
	return updated, nil
}

func (r *PostgresResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResourceNotFound
	}
	return nil
}

// Enroll records the enrolment and bumps the resource counter atomically,
// returning the new count.
func (r *PostgresResourceRepository) Enroll(ctx context.Context, userID, resourceID uuid.UUID) (int, error) {
	var count int
	err := database.RunInTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := getResource(ctx, tx, resourceID, true); err != nil {
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO resource_enrollments (id, user_id, resource_id) VALUES ($1, $2, $3)`,
			uuid.New(), userID, resourceID,
		)
		if err != nil {
			if postgres.IsUniqueViolation(err) {
				return ErrAlreadyEnrolled
			}
			return err
		}

		row := tx.QueryRow(ctx,
			`UPDATE resources SET enrolled_count = enrolled_count + 1, updated_at = now()
			 WHERE id = $1
			 RETURNING enrolled_count`,
			resourceID,
		)
		return row.Scan(&count)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresResourceRepository) ListEnrollments(ctx context.Context, userID uuid.UUID) ([]resource.Enrollment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.user_id, e.resource_id, e.enrolled_at,
			r.id, r.title, r.platform, r.url, r.related_skills, r.cost, r.description, r.enrolled_count, r.created_at, r.updated_at
		 FROM resource_enrollments e
		 JOIN resources r ON r.id = e.resource_id
		 WHERE e.user_id = $1
		 ORDER BY e.enrolled_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resource.Enrollment, 0)
	for rows.Next() {
		var e resource.Enrollment
		var res resource.Resource
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.ResourceID, &e.EnrolledAt,
			&res.ID, &res.Title, &res.Platform, &res.URL, &res.RelatedSkills, &res.Cost, &res.Description,
			&res.EnrolledCount, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		res.RelatedSkills = nonNil(res.RelatedSkills)
		e.Resource = &res
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResourceRepository) EnrolledResourceIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return scanIDs(ctx, r.db, `SELECT resource_id FROM resource_enrollments WHERE user_id = $1 ORDER BY enrolled_at DESC`, userID)
}

func getResource(ctx context.Context, q database.Querier, id uuid.UUID, forUpdate bool) (resource.Resource, error) {
	sql := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	res, err := scanResource(q.QueryRow(ctx, sql, id))
	if err != nil {
		if postgres.IsNoRows(err) {
			return resource.Resource{}, ErrResourceNotFound
		}
		return resource.Resource{}, err
	}
	return res, nil
}

func scanResource(row database.Row) (resource.Resource, error) {
	var res resource.Resource
	err := row.Scan(
		&res.ID, &res.Title, &res.Platform, &res.URL, &res.RelatedSkills, &res.Cost, &res.Description,
		&res.EnrolledCount, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return resource.Resource{}, err
	}
	res.RelatedSkills = nonNil(res.RelatedSkills)
	return res, nil
}

func scanIDs(ctx context.Context, q database.Querier, sql string, args ...any) ([]uuid.UUID, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
