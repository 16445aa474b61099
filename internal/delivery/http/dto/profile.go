package dto

import (
	"career-match/internal/domain/user"
	ucuser "career-match/internal/usecase/user"
)

// UpdateProfileRequest leaves absent fields untouched.
type UpdateProfileRequest struct {
	Name            *string         `json:"name" validate:"omitempty,min=1"`
	EducationLevel  *string         `json:"educationLevel"`
	Department      *string         `json:"department"`
	ExperienceLevel *string         `json:"experienceLevel"`
	PreferredTrack  *string         `json:"preferredTrack"`
	Skills          *StringList     `json:"skills"`
	CareerInterests *StringList     `json:"careerInterests"`
	CVText          *string         `json:"cvText"`
	Experience      *ExperienceList `json:"experience"`
}

func (r UpdateProfileRequest) Input() ucuser.UpdateProfileInput {
	in := ucuser.UpdateProfileInput{
		Name:            r.Name,
		EducationLevel:  r.EducationLevel,
		Department:      r.Department,
		ExperienceLevel: r.ExperienceLevel,
		PreferredTrack:  r.PreferredTrack,
		CVText:          r.CVText,
	}
	if r.Skills != nil {
		s := []string(*r.Skills)
		in.Skills = &s
	}
	if r.CareerInterests != nil {
		s := []string(*r.CareerInterests)
		in.CareerInterests = &s
	}
	if r.Experience != nil {
		e := []user.Experience(*r.Experience)
		in.Experience = &e
	}
	return in
}

type ExperienceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

func (r ExperienceRequest) Experience() user.Experience {
	return user.Experience{Title: r.Title, Description: r.Description, Duration: r.Duration}
}

type CompletenessResponse struct {
	Completeness int `json:"completeness"`
}
