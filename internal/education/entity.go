// AngelaMos | 2026
// entity.go

package education

import (
	"time"
)

type Education struct {
	ID          int64     `db:"id"`
	Institution string    `db:"institution"`
	Degree      string    `db:"degree"`
	Period      string    `db:"period"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	CreatedAt   time.Time `db:"created_at"`
}

type Patch struct {
	Institution *string
	Degree      *string
	Period      *string
	Description *string
	Color       *string
}
