package dto

import "github.com/google/uuid"

type ApplyRequest struct {
	JobID uuid.UUID `json:"jobId" validate:"required"`
	Notes string    `json:"notes" validate:"max=2000"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
