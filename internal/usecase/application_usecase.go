package usecase

import (
	"context"
	"errors"
	"strings"

	"career-match/internal/domain/job"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApplied      = errors.New("already applied")
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, jobID uuid.UUID, notes string) (job.Application, error)
	MyApplications(ctx context.Context, userID uuid.UUID) ([]job.Application, error)
	UpdateStatus(ctx context.Context, userID, applicationID uuid.UUID, status string) (job.Application, error)
}

type Applications struct {
	repo repository.ApplicationRepository
	jobs repository.JobRepository
}

func NewApplicationUsecase(repo repository.ApplicationRepository, jobs repository.JobRepository) *Applications {
	return &Applications{repo: repo, jobs: jobs}
}

func (u *Applications) Apply(ctx context.Context, userID, jobID uuid.UUID, notes string) (job.Application, error) {
	if userID == uuid.Nil {
		return job.Application{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return job.Application{}, ErrInvalidInput
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return job.Application{}, ErrInternal
	}
	if !exists {
		return job.Application{}, ErrJobNotFound
	}

	a, err := u.repo.Create(ctx, userID, jobID, strings.TrimSpace(notes))
	if err != nil {
		return job.Application{}, mapApplicationErr(err)
	}
	return a, nil
}

func (u *Applications) MyApplications(ctx context.Context, userID uuid.UUID) ([]job.Application, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, userID, applicationID uuid.UUID, status string) (job.Application, error) {
	if userID == uuid.Nil {
		return job.Application{}, ErrUnauthorized
	}
	status = strings.TrimSpace(status)
	if !job.IsValidApplicationStatus(status) {
		return job.Application{}, ErrInvalidStatus
	}

	a, err := u.repo.UpdateStatus(ctx, userID, applicationID, status)
	if err != nil {
		return job.Application{}, mapApplicationErr(err)
	}
	return a, nil
}

func mapApplicationErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrAlreadyApplied):
		return ErrAlreadyApplied
	case errors.Is(err, repository.ErrApplicationNotFound):
		return ErrApplicationNotFound
	case errors.Is(err, repository.ErrJobNotFound):
		return ErrJobNotFound
	default:
		return ErrInternal
	}
}
