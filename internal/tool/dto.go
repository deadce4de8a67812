// AngelaMos | 2026
// dto.go

package tool

import (
	"time"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type CreateToolRequest struct {
	Name string                         `json:"name" validate:"required"`
	Icon string                         `json:"icon" validate:"required"`
	Tags core.Nullable[core.StringList] `json:"tags" validate:"required"`
}

type UpdateToolRequest struct {
	Name *string          `json:"name" validate:"omitempty,min=1"`
	Icon *string          `json:"icon" validate:"omitempty,min=1"`
	Tags *core.StringList `json:"tags"`
}

func (r UpdateToolRequest) ToPatch() Patch {
	return Patch{Name: r.Name, Icon: r.Icon, Tags: r.Tags}
}

type ToolResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon"`
	Tags      core.StringList `json:"tags"`
	CreatedAt time.Time       `json:"createdAt"`
}

func ToToolResponse(t *Tool) ToolResponse {
	return ToolResponse{
		ID:        t.ID,
		Name:      t.Name,
		Icon:      t.Icon,
		Tags:      t.Tags.Normalize(),
		CreatedAt: t.CreatedAt.UTC(),
	}
}

func ToToolResponseList(tools []Tool) []ToolResponse {
	responses := make([]ToolResponse, 0, len(tools))
	for i := range tools {
		responses = append(responses, ToToolResponse(&tools[i]))
	}
	return responses
}
