// AngelaMos | 2026
// entity.go

package skill

import (
	"time"
)

const (
	TypeTechnical = "technical"
	TypeBusiness  = "business"
)

type Skill struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	Percentage int       `db:"percentage"`
	Type       string    `db:"type"`
	CreatedAt  time.Time `db:"created_at"`
}

type Patch struct {
	Name       *string
	Percentage *int
	Type       *string
}
