// AngelaMos | 2026
// types.go

package core

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list-of-strings column stored as a JSON array. Decoding
// anything that is not an array of strings yields an empty list, and the
// encoded form is never null.
type StringList []string

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		*l = StringList{}
		return nil
	}
	*l = StringList(items)
	return nil
}

// Normalize returns l, or an empty list when l is nil.
func (l StringList) Normalize() StringList {
	if l == nil {
		return StringList{}
	}
	return l
}

func (l StringList) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(l.Normalize()))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan StringList: unsupported type %T", src)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("scan StringList: %w", err)
	}
	*l = StringList(items).Normalize()
	return nil
}

// Nullable tracks whether a JSON field was present and whether it was null,
// for partial updates of nullable columns.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	V     T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		var zero T
		n.V = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.V); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns nil for an explicit null and a pointer to the value otherwise.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}

func NullableOf[T any](v *T) Nullable[T] {
	if v == nil {
		return Nullable[T]{Set: true}
	}
	return Nullable[T]{Set: true, Valid: true, V: *v}
}
