// AngelaMos | 2026
// entity.go

package experience

import (
	"time"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Experience struct {
	ID               int64           `db:"id"`
	Company          string          `db:"company"`
	Position         string          `db:"position"`
	Location         string          `db:"location"`
	Period           string          `db:"period"`
	Responsibilities core.StringList `db:"responsibilities"`
	Icon             string          `db:"icon"`
	Color            string          `db:"color"`
	CreatedAt        time.Time       `db:"created_at"`
}

type Patch struct {
	Company          *string
	Position         *string
	Location         *string
	Period           *string
	Responsibilities *core.StringList
	Icon             *string
	Color            *string
}
