package seeder

import (
	"context"
	"fmt"

	"career-match/internal/database"
)

type JobsSeeder struct {
	Jobs []CatalogJob
}

func (JobsSeeder) Name() string { return "jobs" }

func (s JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "company", "required_skills", "job_type"); err != nil {
		return err
	}

	return database.RunInTx(ctx, db, func(tx database.Tx) error {
		for _, j := range s.Jobs {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO jobs (title, company, location, remote, required_skills, experience_level, job_type, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (title, company) DO UPDATE SET
	location = EXCLUDED.location,
	remote = EXCLUDED.remote,
	required_skills = EXCLUDED.required_skills,
	experience_level = EXCLUDED.experience_level,
	job_type = EXCLUDED.job_type,
	description = EXCLUDED.description,
	updated_at = now()`,
				j.Title,
				j.Company,
				j.Location,
				j.Remote,
				j.skills(),
				j.ExperienceLevel,
				j.JobType,
				j.Description,
			)
			if err != nil {
				return fmt.Errorf("job %q: %w", j.Title, err)
			}
		}
		return nil
	})
}

type ResourcesSeeder struct {
	Resources []CatalogResource
}

func (ResourcesSeeder) Name() string { return "resources" }

func (s ResourcesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "resources", "id", "title", "platform", "url", "related_skills", "cost"); err != nil {
		return err
	}

	return database.RunInTx(ctx, db, func(tx database.Tx) error {
		for _, r := range s.Resources {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO resources (title, platform, url, related_skills, cost, description)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (url) DO UPDATE SET
	title = EXCLUDED.title,
	platform = EXCLUDED.platform,
	related_skills = EXCLUDED.related_skills,
	cost = EXCLUDED.cost,
	description = EXCLUDED.description,
	updated_at = now()`,
				r.Title,
				r.Platform,
				r.URL,
				r.skills(),
				r.Cost,
				r.Description,
			)
			if err != nil {
				return fmt.Errorf("resource %q: %w", r.Title, err)
			}
		}
		return nil
	})
}
