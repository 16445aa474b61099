package dto

import (
	"career-match/internal/usecase"

	"github.com/google/uuid"
)

type ResourceRequest struct {
	Title         string     `json:"title" validate:"required"`
	Platform      string     `json:"platform" validate:"required"`
	URL           string     `json:"url" validate:"required,url"`
	RelatedSkills StringList `json:"relatedSkills"`
	Cost          string     `json:"cost" validate:"omitempty,oneof=Free Paid"`
	Description   string     `json:"description"`
}

func (r ResourceRequest) Input() usecase.ResourceInput {
	return usecase.ResourceInput{
		Title:         r.Title,
		Platform:      r.Platform,
		URL:           r.URL,
		RelatedSkills: r.RelatedSkills,
		Cost:          r.Cost,
		Description:   r.Description,
	}
}

type EnrollResponse struct {
	ResourceID    uuid.UUID `json:"resourceId"`
	EnrolledCount int       `json:"enrolledCount"`
}
