package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeInternship = "Internship"
	TypePartTime   = "Part-time"
	TypeFullTime   = "Full-time"
	TypeFreelance  = "Freelance"
	TypeContract   = "Contract"
)

type Job struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Remote          bool      `json:"remote"`
	RequiredSkills  []string  `json:"requiredSkills"`
	ExperienceLevel string    `json:"experienceLevel"`
	JobType         string    `json:"jobType"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

const (
	ApplicationApplied     = "Applied"
	ApplicationUnderReview = "Under Review"
	ApplicationInterview   = "Interview"
	ApplicationRejected    = "Rejected"
	ApplicationAccepted    = "Accepted"
)

type Application struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	JobID     uuid.UUID `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	AppliedAt time.Time `json:"appliedAt"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
}

func IsValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationApplied, ApplicationUnderReview, ApplicationInterview, ApplicationRejected, ApplicationAccepted:
		return true
	default:
		return false
	}
}

func IsValidType(t string) bool {
	switch t {
	case TypeInternship, TypePartTime, TypeFullTime, TypeFreelance, TypeContract:
		return true
	default:
		return false
	}
}
