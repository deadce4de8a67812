// AngelaMos | 2026
// dto.go

package experience

import (
	"time"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type CreateExperienceRequest struct {
	Company          string                         `json:"company"          validate:"required"`
	Position         string                         `json:"position"         validate:"required"`
	Location         string                         `json:"location"         validate:"required"`
	Period           string                         `json:"period"           validate:"required"`
	Responsibilities core.Nullable[core.StringList] `json:"responsibilities" validate:"required"`
	Icon             string                         `json:"icon"             validate:"required"`
	Color            string                         `json:"color"            validate:"required,color"`
}

// ToExperience treats an explicit null responsibilities list as empty.
func (r CreateExperienceRequest) ToExperience() *Experience {
	return &Experience{
		Company:          r.Company,
		Position:         r.Position,
		Location:         r.Location,
		Period:           r.Period,
		Responsibilities: r.Responsibilities.V.Normalize(),
		Icon:             r.Icon,
		Color:            r.Color,
	}
}

type UpdateExperienceRequest struct {
	Company          *string          `json:"company"          validate:"omitempty,min=1"`
	Position         *string          `json:"position"         validate:"omitempty,min=1"`
	Location         *string          `json:"location"         validate:"omitempty,min=1"`
	Period           *string          `json:"period"           validate:"omitempty,min=1"`
	Responsibilities *core.StringList `json:"responsibilities"`
	Icon             *string          `json:"icon"             validate:"omitempty,min=1"`
	Color            *string          `json:"color"            validate:"omitempty,color"`
}

func (r UpdateExperienceRequest) ToPatch() Patch {
	return Patch(r)
}

type ExperienceResponse struct {
	ID               int64           `json:"id"`
	Company          string          `json:"company"`
	Position         string          `json:"position"`
	Location         string          `json:"location"`
	Period           string          `json:"period"`
	Responsibilities core.StringList `json:"responsibilities"`
	Icon             string          `json:"icon"`
	Color            string          `json:"color"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func ToExperienceResponse(e *Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:               e.ID,
		Company:          e.Company,
		Position:         e.Position,
		Location:         e.Location,
		Period:           e.Period,
		Responsibilities: e.Responsibilities.Normalize(),
		Icon:             e.Icon,
		Color:            e.Color,
		CreatedAt:        e.CreatedAt.UTC(),
	}
}

func ToExperienceResponseList(exps []Experience) []ExperienceResponse {
	responses := make([]ExperienceResponse, 0, len(exps))
	for i := range exps {
		responses = append(responses, ToExperienceResponse(&exps[i]))
	}
	return responses
}
