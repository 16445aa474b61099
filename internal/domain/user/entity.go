package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	EducationHighSchool    = "High School"
	EducationUndergraduate = "Undergraduate"
	EducationGraduate      = "Graduate"
	EducationBootcamp      = "Bootcamp"
	EducationSelfTaught    = "Self-Taught"
)

const (
	ExperienceFresher = "Fresher"
	ExperienceJunior  = "Junior"
	ExperienceMid     = "Mid"
	ExperienceSenior  = "Senior"
)

const (
	TrackWebDevelopment = "Web Development"
	TrackDataScience    = "Data Science"
	TrackDesign         = "Design"
	TrackMarketing      = "Marketing"
	TrackBusiness       = "Business"
	TrackOther          = "Other"
)

type User struct {
	ID              uuid.UUID
	Name            string
	Email           string
	PasswordHash    string
	EducationLevel  string
	Department      string
	ExperienceLevel string
	PreferredTrack  string
	Skills          []string
	CareerInterests []string
	CVText          string
	Experience      []Experience
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Experience struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// SplitList turns "a, b,,c" into [a b c]. Used for skills and career
// interests, which clients send either as arrays or comma strings.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}

// The enum checks accept the empty string, which means "not provided".

func IsValidEducationLevel(s string) bool {
	switch s {
	case "", EducationHighSchool, EducationUndergraduate, EducationGraduate, EducationBootcamp, EducationSelfTaught:
		return true
	}
	return false
}

func IsValidExperienceLevel(s string) bool {
	switch s {
	case "", ExperienceFresher, ExperienceJunior, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

func IsValidTrack(s string) bool {
	switch s {
	case "", TrackWebDevelopment, TrackDataScience, TrackDesign, TrackMarketing, TrackBusiness, TrackOther:
		return true
	}
	return false
}

// HasValidEnums reports whether every enumerated profile field holds an
// allowed value.
func (u User) HasValidEnums() bool {
	return IsValidEducationLevel(u.EducationLevel) &&
		IsValidExperienceLevel(u.ExperienceLevel) &&
		IsValidTrack(u.PreferredTrack)
}
