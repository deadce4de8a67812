// AngelaMos | 2026
// entity.go

package project

import (
	"time"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Project struct {
	ID           int64           `db:"id"`
	Title        string          `db:"title"`
	Summary      string          `db:"summary"`
	Description  string          `db:"description"`
	Achievements core.StringList `db:"achievements"`
	Tags         core.StringList `db:"tags"`
	Color        string          `db:"color"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// Patch holds the columns a partial update may change. Nil means unchanged.
type Patch struct {
	Title        *string
	Summary      *string
	Description  *string
	Achievements *core.StringList
	Tags         *core.StringList
	Color        *string
}
