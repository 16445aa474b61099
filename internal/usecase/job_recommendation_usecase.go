package usecase

import (
	"context"
	"errors"
	"log"

	"career-match/internal/domain/job"
	"career-match/internal/domain/matching"
	"career-match/internal/domain/resource"
	"career-match/internal/domain/user"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid_profile"
	OutcomeError        = "error"
	OutcomeEmptyProfile = "empty_profile"
)

// RecommendObserver receives one call per recommendation computed.
type RecommendObserver interface {
	ObserveRecommendation(outcome string, jobs, resources int)
}

type RecommendedJob struct {
	job.Job
	MatchingSkills  []string `json:"matchingSkills"`
	MatchScore      int      `json:"matchScore"`
	MatchPercentage int      `json:"matchPercentage"`
}

type Recommendations struct {
	Jobs       []RecommendedJob    `json:"jobs"`
	Resources  []resource.Resource `json:"resources"`
	UserSkills []string            `json:"userSkills"`
	UserTrack  string              `json:"userTrack"`
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) (Recommendations, error)
	GetJobMatches(ctx context.Context, userID uuid.UUID) ([]RecommendedJob, error)
}

type JobRecommendation struct {
	users    user.Repository
	catalog  *Catalog
	observer RecommendObserver
	logger   *log.Logger
}

func NewJobRecommendationUsecase(users user.Repository, catalog *Catalog, observer RecommendObserver, logger *log.Logger) *JobRecommendation {
	return &JobRecommendation{users: users, catalog: catalog, observer: observer, logger: logger}
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID) (Recommendations, error) {
	usr, err := u.loadUser(ctx, userID)
	if err != nil {
		return Recommendations{}, err
	}
	return u.recommendFor(ctx, usr)
}

// GetJobMatches scores the whole catalogue for the user without a cap.
func (u *JobRecommendation) GetJobMatches(ctx context.Context, userID uuid.UUID) ([]RecommendedJob, error) {
	usr, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := u.catalog.Jobs(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	profile := matching.ExtractProfile(usr)
	scored := matching.ScoreJobs(profile, toPostings(jobs), len(jobs))
	return attachJobs(scored, jobs), nil
}

func (u *JobRecommendation) recommendFor(ctx context.Context, usr user.User) (Recommendations, error) {
	jobs, resources, err := u.catalog.Snapshot(ctx)
	if err != nil {
		u.observe(OutcomeError, 0, 0)
		return Recommendations{}, ErrInternal
	}

	profile := matching.ExtractProfile(usr)
	rec, err := matching.Recommend(profile, toPostings(jobs), toLearningResources(resources))
	if err != nil {
		if errors.Is(err, matching.ErrInvalidProfile) {
			u.observe(OutcomeInvalid, 0, 0)
			return Recommendations{}, err
		}
		u.observe(OutcomeError, 0, 0)
		return Recommendations{}, ErrInternal
	}

	out := Recommendations{
		Jobs:       attachJobs(rec.Jobs, jobs),
		Resources:  attachResources(rec.Resources, resources),
		UserSkills: profile.Skills,
		UserTrack:  profile.PreferredTrack,
	}

	outcome := OutcomeOK
	if len(profile.Skills) == 0 {
		outcome = OutcomeEmptyProfile
	}
	u.observe(outcome, len(out.Jobs), len(out.Resources))
	if u.logger != nil {
		u.logger.Printf("[Recommend] user=%s skills=%d jobs=%d resources=%d", usr.ID, len(profile.Skills), len(out.Jobs), len(out.Resources))
	}
	return out, nil
}

func (u *JobRecommendation) loadUser(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (u *JobRecommendation) observe(outcome string, jobs, resources int) {
	if u.observer != nil {
		u.observer.ObserveRecommendation(outcome, jobs, resources)
	}
}

func toPostings(jobs []job.Job) []matching.JobPosting {
	out := make([]matching.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, matching.JobPosting{ID: j.ID, Title: j.Title, RequiredSkills: j.RequiredSkills})
	}
	return out
}

func toLearningResources(resources []resource.Resource) []matching.LearningResource {
	out := make([]matching.LearningResource, 0, len(resources))
	for _, r := range resources {
		out = append(out, matching.LearningResource{ID: r.ID, RelatedSkills: r.RelatedSkills})
	}
	return out
}

func attachJobs(scored []matching.ScoredJob, jobs []job.Job) []RecommendedJob {
	byID := make(map[uuid.UUID]job.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	out := make([]RecommendedJob, 0, len(scored))
	for _, s := range scored {
		j, ok := byID[s.ID]
		if !ok {
			continue
		}
		out = append(out, RecommendedJob{
			Job:             j,
			MatchingSkills:  s.MatchingSkills,
			MatchScore:      s.MatchScore,
			MatchPercentage: s.MatchPercentage,
		})
	}
	return out
}

func attachResources(filtered []matching.LearningResource, resources []resource.Resource) []resource.Resource {
	byID := make(map[uuid.UUID]resource.Resource, len(resources))
	for _, r := range resources {
		byID[r.ID] = r
	}

	out := make([]resource.Resource, 0, len(filtered))
	for _, f := range filtered {
		if r, ok := byID[f.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}
