// AngelaMos | 2026
// entity.go

package tool

import (
	"time"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Tool struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	Icon      string          `db:"icon"`
	Tags      core.StringList `db:"tags"`
	CreatedAt time.Time       `db:"created_at"`
}

type Patch struct {
	Name *string
	Icon *string
	Tags *core.StringList
}
