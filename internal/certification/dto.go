// AngelaMos | 2026
// dto.go

package certification

import (
	"time"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type CreateCertificationRequest struct {
	Name            string  `json:"name"             validate:"required"`
	Description     string  `json:"description"      validate:"required"`
	Details         string  `json:"details"          validate:"required"`
	Icon            string  `json:"icon"             validate:"required"`
	Color           string  `json:"color"            validate:"required,color"`
	CertificatePath *string `json:"certificate_path"`
}

func (r CreateCertificationRequest) ToCertification() *Certification {
	return &Certification{
		Name:            r.Name,
		Description:     r.Description,
		Details:         r.Details,
		Icon:            r.Icon,
		Color:           r.Color,
		CertificatePath: r.CertificatePath,
	}
}

type UpdateCertificationRequest struct {
	Name            *string               `json:"name"             validate:"omitempty,min=1"`
	Description     *string               `json:"description"      validate:"omitempty,min=1"`
	Details         *string               `json:"details"          validate:"omitempty,min=1"`
	Icon            *string               `json:"icon"             validate:"omitempty,min=1"`
	Color           *string               `json:"color"            validate:"omitempty,color"`
	CertificatePath core.Nullable[string] `json:"certificate_path"`
}

// NullableFields names the update fields that may be sent as null.
var NullableFields = []string{"certificate_path"}

func (r UpdateCertificationRequest) ToPatch() Patch {
	return Patch{
		Name:            r.Name,
		Description:     r.Description,
		Details:         r.Details,
		Icon:            r.Icon,
		Color:           r.Color,
		CertificatePath: r.CertificatePath,
	}
}

type CertificationResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Details         string    `json:"details"`
	Icon            string    `json:"icon"`
	Color           string    `json:"color"`
	CertificatePath *string   `json:"certificate_path"`
	CreatedAt       time.Time `json:"createdAt"`
}

func ToCertificationResponse(c *Certification) CertificationResponse {
	return CertificationResponse{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Details:         c.Details,
		Icon:            c.Icon,
		Color:           c.Color,
		CertificatePath: c.CertificatePath,
		CreatedAt:       c.CreatedAt.UTC(),
	}
}

func ToCertificationResponseList(certs []Certification) []CertificationResponse {
	responses := make([]CertificationResponse, 0, len(certs))
	for i := range certs {
		responses = append(responses, ToCertificationResponse(&certs[i]))
	}
	return responses
}
