// AngelaMos | 2026
// dto.go

package contact

import (
	"time"
)

const SuccessMessage = "Message sent successfully!"

type CreateSubmissionRequest struct {
	Name    string  `json:"name"    validate:"required,min=2"`
	Email   string  `json:"email"   validate:"required,email"`
	Subject *string `json:"subject"`
	Message string  `json:"message" validate:"required,min=10"`
}

type CreateSubmissionResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type SubmissionResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

func ToSubmissionResponse(s *Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Subject:   s.Subject,
		Message:   s.Message,
		CreatedAt: s.CreatedAt.UTC(),
		Read:      s.Read,
	}
}

func ToSubmissionResponseList(subs []Submission) []SubmissionResponse {
	responses := make([]SubmissionResponse, 0, len(subs))
	for i := range subs {
		responses = append(responses, ToSubmissionResponse(&subs[i]))
	}
	return responses
}
