package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"career-match/internal/domain/resource"
	"career-match/internal/domain/user"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrAlreadyEnrolled  = errors.New("already enrolled")
	ErrDuplicateURL     = errors.New("resource url already exists")
)

// ResourceEvents is told about catalogue changes after they are committed.
type ResourceEvents interface {
	ResourcesUpdated(resourceID uuid.UUID)
	ResourceEnrolled(resourceID uuid.UUID, enrolledCount int)
}

type ResourceInput struct {
	Title         string
	Platform      string
	URL           string
	RelatedSkills []string
	Cost          string
	Description   string
}

type ResourceUsecase interface {
	List(ctx context.Context) ([]resource.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (resource.Resource, error)
	Create(ctx context.Context, in ResourceInput) (resource.Resource, error)
	Update(ctx context.Context, id uuid.UUID, in ResourceInput) (resource.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Enroll(ctx context.Context, userID, resourceID uuid.UUID) (int, error)
	MyEnrollments(ctx context.Context, userID uuid.UUID) ([]resource.Enrollment, error)
}

type Resources struct {
	repo    repository.ResourceRepository
	catalog *Catalog
	events  ResourceEvents
	logger  *log.Logger
}

func NewResourceUsecase(repo repository.ResourceRepository, catalog *Catalog, events ResourceEvents, logger *log.Logger) *Resources {
	return &Resources{repo: repo, catalog: catalog, events: events, logger: logger}
}

func (u *Resources) List(ctx context.Context) ([]resource.Resource, error) {
	out, err := u.catalog.Resources(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Resources) Get(ctx context.Context, id uuid.UUID) (resource.Resource, error) {
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return resource.Resource{}, mapResourceErr(err)
	}
	return r, nil
}

func (u *Resources) Create(ctx context.Context, in ResourceInput) (resource.Resource, error) {
	r, err := in.toResource()
	if err != nil {
		return resource.Resource{}, err
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return resource.Resource{}, mapResourceErr(err)
	}
	u.changed(ctx, created.ID)
	return created, nil
}

func (u *Resources) Update(ctx context.Context, id uuid.UUID, in ResourceInput) (resource.Resource, error) {
	r, err := in.toResource()
	if err != nil {
		return resource.Resource{}, err
	}
	r.ID = id
	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return resource.Resource{}, mapResourceErr(err)
	}
	u.changed(ctx, updated.ID)
	return updated, nil
}

func (u *Resources) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return mapResourceErr(err)
	}
	u.changed(ctx, id)
	return nil
}

func (u *Resources) Enroll(ctx context.Context, userID, resourceID uuid.UUID) (int, error) {
	if userID == uuid.Nil {
		return 0, ErrUnauthorized
	}
	count, err := u.repo.Enroll(ctx, userID, resourceID)
	if err != nil {
		return 0, mapResourceErr(err)
	}

	u.catalog.InvalidateResources(ctx)
	if u.events != nil {
		u.events.ResourceEnrolled(resourceID, count)
	}
	if u.logger != nil {
		u.logger.Printf("[Resources] enrolled user=%s resource=%s count=%d", userID, resourceID, count)
	}
	return count, nil
}

func (u *Resources) MyEnrollments(ctx context.Context, userID uuid.UUID) ([]resource.Enrollment, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.repo.ListEnrollments(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Resources) changed(ctx context.Context, id uuid.UUID) {
	u.catalog.InvalidateResources(ctx)
	if u.events != nil {
		u.events.ResourcesUpdated(id)
	}
}

func (in ResourceInput) toResource() (resource.Resource, error) {
	r := resource.Resource{
		Title:         strings.TrimSpace(in.Title),
		Platform:      strings.TrimSpace(in.Platform),
		URL:           strings.TrimSpace(in.URL),
		RelatedSkills: user.CleanList(in.RelatedSkills),
		Cost:          strings.TrimSpace(in.Cost),
		Description:   strings.TrimSpace(in.Description),
	}
	if r.Cost == "" {
		r.Cost = resource.CostFree
	}
	if r.Title == "" || r.Platform == "" || !resource.IsValidCost(r.Cost) {
		return resource.Resource{}, ErrInvalidInput
	}
	parsed, err := url.ParseRequestURI(r.URL)
	if err != nil || parsed.Host == "" {
		return resource.Resource{}, ErrInvalidInput
	}
	return r, nil
}

func mapResourceErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrResourceNotFound):
		return ErrResourceNotFound
	case errors.Is(err, repository.ErrAlreadyEnrolled):
		return ErrAlreadyEnrolled
	case errors.Is(err, repository.ErrDuplicateURL):
		return ErrDuplicateURL
	default:
		return ErrInternal
	}
}
