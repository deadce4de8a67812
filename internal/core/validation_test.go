// AngelaMos | 2026
// validation_test.go

package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title *string `json:"title" validate:"required"`
	Color string  `json:"color" validate:"required,color"`
	Email string  `json:"email" validate:"omitempty,email"`
}

func TestNewValidator_ColorTag(t *testing.T) {
	v := NewValidator()
	title := "T"

	for _, c := range Colors {
		assert.NoError(t, v.Struct(sample{Title: &title, Color: c}), c)
	}

	err := v.Struct(sample{Title: &title, Color: "purple"})
	require.Error(t, err)
	assert.Contains(t, FormatValidationError(err), "color must be one of")
}

func TestFormatValidationError_UsesJSONNames(t *testing.T) {
	err := NewValidator().Struct(sample{Color: "primary", Email: "nope"})
	require.Error(t, err)

	msg := FormatValidationError(err)
	assert.Contains(t, msg, "title is required")
	assert.Contains(t, msg, "email must be a valid email address")
}

func TestFormatValidationError_PlainError(t *testing.T) {
	assert.Equal(t, "boom", FormatValidationError(errors.New("boom")))
}

type partial struct {
	Title *string           `json:"title"`
	Path  Nullable[string] `json:"certificate_path"`
}

func TestUnmarshalPartial(t *testing.T) {
	var p partial
	require.NoError(t, UnmarshalPartial([]byte(`{"title":"New"}`), &p))
	require.NotNil(t, p.Title)
	assert.Equal(t, "New", *p.Title)
	assert.False(t, p.Path.Set)

	err := UnmarshalPartial([]byte(`{"title":null}`), &partial{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	p = partial{}
	require.NoError(t, UnmarshalPartial(
		[]byte(`{"certificate_path":null}`), &p, "certificate_path",
	))
	assert.True(t, p.Path.Set)
	assert.False(t, p.Path.Valid)

	for _, body := range []string{`[]`, `"x"`, `null`, `{"title":5}`, `{`} {
		err := UnmarshalPartial([]byte(body), &partial{})
		assert.ErrorIs(t, err, ErrInvalidInput, body)
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"single object", `{"title":"T","color":"primary"}`, false},
		{"trailing newline", "{\"title\":\"T\"}\n", false},
		{"trailing garbage", `{"title":"T"}garbage`, true},
		{"second object", `{"title":"T"}{"title":"U"}`, true},
		{"empty", ``, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var dst sample
			err := DecodeJSON(httptest.NewRecorder(), req, &dst)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, dst.Title)
			assert.Equal(t, "T", *dst.Title)
		})
	}
}

func TestNewValidator_RequiredListAllowsNull(t *testing.T) {
	type body struct {
		Tags Nullable[StringList] `json:"tags" validate:"required"`
	}
	v := NewValidator()

	var withNull body
	require.NoError(t, json.Unmarshal([]byte(`{"tags":null}`), &withNull))
	assert.NoError(t, v.Struct(withNull))
	assert.Equal(t, StringList{}, withNull.Tags.V.Normalize())

	var missing body
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.Error(t, v.Struct(missing))
}
