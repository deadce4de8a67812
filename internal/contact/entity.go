// AngelaMos | 2026
// entity.go

package contact

import (
	"time"
)

type Submission struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   *string   `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
	Read      bool      `db:"read"`
}

const EventSubmitted = "contact.submitted"

// SubmittedEvent is published after a submission is stored. The message
// body is left out; consumers fetch it if they need it.
type SubmittedEvent struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
