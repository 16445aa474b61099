package resource

import (
	"time"

	"github.com/google/uuid"
)

const (
	CostFree = "Free"
	CostPaid = "Paid"
)

type Resource struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Platform      string    `json:"platform"`
	URL           string    `json:"url"`
	RelatedSkills []string  `json:"relatedSkills"`
	Cost          string    `json:"cost"`
	Description   string    `json:"description"`
	EnrolledCount int       `json:"enrolledCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Enrollment struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	ResourceID uuid.UUID `json:"resourceId"`
	EnrolledAt time.Time `json:"enrolledAt"`
	Resource   *Resource `json:"resource,omitempty"`
}

func IsValidCost(c string) bool {
	return c == CostFree || c == CostPaid
}
