// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=1,max=100"`
	Password string  `json:"password" validate:"required,min=8,max=128"`
	Email    *string `json:"email"    validate:"omitempty,email,max=255"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
	}
}
