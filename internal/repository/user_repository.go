package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"career-match/internal/database"
	"career-match/internal/database/postgres"
	"career-match/internal/domain/user"

	"github.com/google/uuid"
)

var ErrEmailTaken = errors.New("email already taken")

const userColumns = `id, name, email, password_hash, education_level, department, experience_level,
	preferred_track, skills, career_interests, cv_text, experience, created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`, strings.TrimSpace(email))
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u user.User) error {
	exp, err := marshalExperience(u.Experience)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, education_level, department, experience_level,
			preferred_track, skills, career_interests, cv_text, experience)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.EducationLevel, u.Department, u.ExperienceLevel,
		u.PreferredTrack, nonNil(u.Skills), nonNil(u.CareerInterests), u.CVText, exp,
	)
	if postgres.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, strings.TrimSpace(email))
	return scanUser(row)
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, u user.User) error {
	exp, err := marshalExperience(u.Experience)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET
			name = $2, email = $3, password_hash = $4, education_level = $5, department = $6,
			experience_level = $7, preferred_track = $8, skills = $9, career_interests = $10,
			cv_text = $11, experience = $12, updated_at = now()
		 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.EducationLevel, u.Department,
		u.ExperienceLevel, u.PreferredTrack, nonNil(u.Skills), nonNil(u.CareerInterests),
		u.CVText, exp,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var exp []byte
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.EducationLevel, &u.Department, &u.ExperienceLevel,
		&u.PreferredTrack, &u.Skills, &u.CareerInterests, &u.CVText, &exp, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	if len(exp) > 0 {
		if err := json.Unmarshal(exp, &u.Experience); err != nil {
			return user.User{}, err
		}
	}
	u.Skills = nonNil(u.Skills)
	u.CareerInterests = nonNil(u.CareerInterests)
	if u.Experience == nil {
		u.Experience = []user.Experience{}
	}
	return u, nil
}

func marshalExperience(exp []user.Experience) ([]byte, error) {
	if exp == nil {
		exp = []user.Experience{}
	}
	return json.Marshal(exp)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
