package usecase

import (
	"context"

	"career-match/internal/domain/user"
	"career-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Dashboard is recomputed on every request from the stored collections.
type Dashboard struct {
	ProfileCompleteness int             `json:"profileCompleteness"`
	AppliedCount        int             `json:"appliedCount"`
	EnrolledCount       int             `json:"enrolledCount"`
	Recommendations     Recommendations `json:"recommendations"`
	AppliedJobIDs       []uuid.UUID     `json:"appliedJobIds"`
	EnrolledResourceIDs []uuid.UUID     `json:"enrolledResourceIds"`
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (Dashboard, error)
}

type DashboardService struct {
	recommend    *JobRecommendation
	applications repository.ApplicationRepository
	resources    repository.ResourceRepository
}

func NewDashboardUsecase(recommend *JobRecommendation, applications repository.ApplicationRepository, resources repository.ResourceRepository) *DashboardService {
	return &DashboardService{recommend: recommend, applications: applications, resources: resources}
}

func (u *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	usr, err := u.recommend.loadUser(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}

	var (
		rec      Recommendations
		applied  []uuid.UUID
		enrolled []uuid.UUID
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rec, err = u.recommend.recommendFor(gctx, usr)
		return err
	})
	g.Go(func() error {
		var err error
		applied, err = u.applications.AppliedJobIDs(gctx, usr.ID)
		if err != nil {
			return ErrInternal
		}
		return nil
	})
	g.Go(func() error {
		var err error
		enrolled, err = u.resources.EnrolledResourceIDs(gctx, usr.ID)
		if err != nil {
			return ErrInternal
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		ProfileCompleteness: user.Completeness(usr),
		AppliedCount:        len(applied),
		EnrolledCount:       len(enrolled),
		Recommendations:     rec,
		AppliedJobIDs:       applied,
		EnrolledResourceIDs: enrolled,
	}, nil
}
