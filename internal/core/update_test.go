// AngelaMos | 2026
// update_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignments_UpdateByID(t *testing.T) {
	var a Assignments
	assert.True(t, a.Empty())

	title := "T"
	var summary *string
	SetIf(&a, "title", &title)
	SetIf(&a, "summary", summary)
	a.Set("updated_at", "now")

	query, args := a.UpdateByID("projects", 7)
	assert.Equal(t, "UPDATE projects SET title = ?, updated_at = ? WHERE id = ?", query)
	assert.Equal(t, []any{"T", "now", int64(7)}, args)
}
