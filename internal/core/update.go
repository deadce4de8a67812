// AngelaMos | 2026
// update.go

package core

import (
	"strings"
)

// Assignments collects the SET clause of a partial UPDATE. Column names
// come from code, never from clients; values are always bound.
type Assignments struct {
	columns []string
	args    []any
}

func (a *Assignments) Set(column string, value any) {
	a.columns = append(a.columns, column)
	a.args = append(a.args, value)
}

// SetIf adds column only when value is non-nil.
func SetIf[T any](a *Assignments, column string, value *T) {
	if value != nil {
		a.Set(column, *value)
	}
}

func (a *Assignments) Empty() bool {
	return len(a.columns) == 0
}

// UpdateByID builds "UPDATE table SET c1 = ?, ... WHERE id = ?" with
// question-mark bindvars; callers Rebind for their driver.
func (a *Assignments) UpdateByID(table string, id int64) (string, []any) {
	sets := make([]string, len(a.columns))
	for i, col := range a.columns {
		sets[i] = col + " = ?"
	}

	query := "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args := make([]any, 0, len(a.args)+1)
	args = append(args, a.args...)
	args = append(args, id)
	return query, args
}
