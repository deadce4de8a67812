// AngelaMos | 2026
// dto.go

package skill

import (
	"time"
)

type CreateSkillRequest struct {
	Name       string `json:"name"       validate:"required"`
	Percentage *int   `json:"percentage" validate:"required"`
	Type       string `json:"type"       validate:"required,oneof=technical business"`
}

type UpdateSkillRequest struct {
	Name       *string `json:"name"       validate:"omitempty,min=1"`
	Percentage *int    `json:"percentage"`
	Type       *string `json:"type"       validate:"omitempty,oneof=technical business"`
}

func (r UpdateSkillRequest) ToPatch() Patch {
	return Patch{Name: r.Name, Percentage: r.Percentage, Type: r.Type}
}

type SkillResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Percentage int       `json:"percentage"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToSkillResponse(s *Skill) SkillResponse {
	return SkillResponse{
		ID:         s.ID,
		Name:       s.Name,
		Percentage: s.Percentage,
		Type:       s.Type,
		CreatedAt:  s.CreatedAt.UTC(),
	}
}

func ToSkillResponseList(skills []Skill) []SkillResponse {
	responses := make([]SkillResponse, 0, len(skills))
	for i := range skills {
		responses = append(responses, ToSkillResponse(&skills[i]))
	}
	return responses
}
