package dto

import (
	"time"

	"career-match/internal/domain/user"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user. The password hash never
// leaves the server.
type UserResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	EducationLevel  string            `json:"educationLevel"`
	Department      string            `json:"department"`
	ExperienceLevel string            `json:"experienceLevel"`
	PreferredTrack  string            `json:"preferredTrack"`
	Skills          []string          `json:"skills"`
	CareerInterests []string          `json:"careerInterests"`
	CVText          string            `json:"cvText"`
	Experience      []user.Experience `json:"experience"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		EducationLevel:  u.EducationLevel,
		Department:      u.Department,
		ExperienceLevel: u.ExperienceLevel,
		PreferredTrack:  u.PreferredTrack,
		Skills:          nonNilStrings(u.Skills),
		CareerInterests: nonNilStrings(u.CareerInterests),
		CVText:          u.CVText,
		Experience:      nonNilExperience(u.Experience),
		CreatedAt:       formatTime(u.CreatedAt),
		UpdatedAt:       formatTime(u.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nonNilExperience(in []user.Experience) []user.Experience {
	if in == nil {
		return []user.Experience{}
	}
	return in
}
