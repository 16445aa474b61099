package matching

import (
	"errors"

	"career-match/internal/domain/user"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 5
	TrackBonus   = 2
)

var ErrInvalidProfile = errors.New("invalid profile")

type UserProfile struct {
	Skills         []string
	PreferredTrack string
}

type JobPosting struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	RequiredSkills []string  `json:"requiredSkills"`
}

type ScoredJob struct {
	JobPosting
	MatchingSkills  []string `json:"matchingSkills"`
	MatchScore      int      `json:"matchScore"`
	MatchPercentage int      `json:"matchPercentage"`
}

type LearningResource struct {
	ID            uuid.UUID `json:"id"`
	RelatedSkills []string  `json:"relatedSkills"`
}

type Recommendation struct {
	Jobs      []ScoredJob        `json:"jobs"`
	Resources []LearningResource `json:"resources"`
}

// ExtractProfile reduces a user record to the attributes used for matching.
func ExtractProfile(u user.User) *UserProfile {
	skills := make([]string, len(u.Skills))
	copy(skills, u.Skills)
	return &UserProfile{Skills: skills, PreferredTrack: u.PreferredTrack}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
