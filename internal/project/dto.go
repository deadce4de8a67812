// AngelaMos | 2026
// dto.go

package project

import (
	"time"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type CreateProjectRequest struct {
	Title        string                         `json:"title"        validate:"required"`
	Summary      string                         `json:"summary"      validate:"required"`
	Description  string                         `json:"description"  validate:"required"`
	Achievements core.Nullable[core.StringList] `json:"achievements" validate:"required"`
	Tags         core.Nullable[core.StringList] `json:"tags"         validate:"required"`
	Color        string                         `json:"color"        validate:"required,color"`
}

func (r CreateProjectRequest) ToProject() *Project {
	return &Project{
		Title:        r.Title,
		Summary:      r.Summary,
		Description:  r.Description,
		Achievements: listOrEmpty(r.Achievements),
		Tags:         listOrEmpty(r.Tags),
		Color:        r.Color,
	}
}

type UpdateProjectRequest struct {
	Title        *string          `json:"title"        validate:"omitempty,min=1"`
	Summary      *string          `json:"summary"      validate:"omitempty,min=1"`
	Description  *string          `json:"description"  validate:"omitempty,min=1"`
	Achievements *core.StringList `json:"achievements"`
	Tags         *core.StringList `json:"tags"`
	Color        *string          `json:"color"        validate:"omitempty,color"`
}

func (r UpdateProjectRequest) ToPatch() Patch {
	return Patch{
		Title:        r.Title,
		Summary:      r.Summary,
		Description:  r.Description,
		Achievements: r.Achievements,
		Tags:         r.Tags,
		Color:        r.Color,
	}
}

type ProjectResponse struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Summary      string          `json:"summary"`
	Description  string          `json:"description"`
	Achievements core.StringList `json:"achievements"`
	Tags         core.StringList `json:"tags"`
	Color        string          `json:"color"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func ToProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Summary:      p.Summary,
		Description:  p.Description,
		Achievements: p.Achievements.Normalize(),
		Tags:         p.Tags.Normalize(),
		Color:        p.Color,
		CreatedAt:    p.CreatedAt.UTC(),
		UpdatedAt:    p.UpdatedAt.UTC(),
	}
}

func ToProjectResponseList(projects []Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, ToProjectResponse(&projects[i]))
	}
	return responses
}

// listOrEmpty flattens a present list field. An explicit null, like any
// other non-array value, becomes an empty list.
func listOrEmpty(l core.Nullable[core.StringList]) core.StringList {
	return l.V.Normalize()
}
