// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User is an account row. Password always holds an argon2id hash.
type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	Email     *string   `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}
