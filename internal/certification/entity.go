// AngelaMos | 2026
// entity.go

package certification

import (
	"time"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Certification struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	Details         string    `db:"details"`
	Icon            string    `db:"icon"`
	Color           string    `db:"color"`
	CertificatePath *string   `db:"certificate_path"`
	CreatedAt       time.Time `db:"created_at"`
}

// Patch leaves CertificatePath untouched unless Set; Set without Valid
// clears the column.
type Patch struct {
	Name            *string
	Description     *string
	Details         *string
	Icon            *string
	Color           *string
	CertificatePath core.Nullable[string]
}
