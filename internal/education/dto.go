// AngelaMos | 2026
// dto.go

package education

import (
	"time"
)

type CreateEducationRequest struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree"      validate:"required"`
	Period      string `json:"period"      validate:"required"`
	Description string `json:"description" validate:"required"`
	Color       string `json:"color"       validate:"required,color"`
}

type UpdateEducationRequest struct {
	Institution *string `json:"institution" validate:"omitempty,min=1"`
	Degree      *string `json:"degree"      validate:"omitempty,min=1"`
	Period      *string `json:"period"      validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Color       *string `json:"color"       validate:"omitempty,color"`
}

type EducationResponse struct {
	ID          int64     `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToEducationResponse(e *Education) EducationResponse {
	return EducationResponse{
		ID:          e.ID,
		Institution: e.Institution,
		Degree:      e.Degree,
		Period:      e.Period,
		Description: e.Description,
		Color:       e.Color,
		CreatedAt:   e.CreatedAt.UTC(),
	}
}

func ToEducationResponseList(eds []Education) []EducationResponse {
	responses := make([]EducationResponse, 0, len(eds))
	for i := range eds {
		responses = append(responses, ToEducationResponse(&eds[i]))
	}
	return responses
}
