// AngelaMos | 2026
// handler_test.go

package project

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	h := NewHandler(
		NewService(NewRepository(testutil.OpenDB(t))),
		core.NewValidator(),
	)

	r := chi.NewRouter()
	r.Route("/api", h.RegisterRoutes)
	return r
}

func do(
	t *testing.T,
	h http.Handler,
	method, path, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"title":"T","summary":"S","description":"D",` +
	`"achievements":[],"tags":[],"color":"primary"}`

func TestHandler_CreateThenGetReturnsIdenticalBody(t *testing.T) {
	router := newTestRouter(t)

	created := do(t, router, http.MethodPost, "/api/projects", validBody)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &body))
	assert.Contains(t, body, "createdAt")
	assert.Contains(t, body, "updatedAt")

	id, ok := body["id"].(float64)
	require.True(t, ok)
	assert.Equal(t, float64(int64(id)), id)

	got := do(t, router, http.MethodGet, "/api/projects/"+strconv.Itoa(int(id)), "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.JSONEq(t, created.Body.String(), got.Body.String())
}

func TestHandler_CreateCoercesNonArrayLists(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/projects",
		`{"title":"T","summary":"S","description":"D",`+
			`"achievements":"lots","tags":{"a":1},"color":"accent"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var p ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, core.StringList{}, p.Achievements)
	assert.Equal(t, core.StringList{}, p.Tags)
}

func TestHandler_CreateTreatsNullListsAsEmpty(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/projects",
		`{"title":"T","summary":"S","description":"D",`+
			`"achievements":null,"tags":null,"color":"primary"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var p ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, core.StringList{}, p.Achievements)
	assert.Equal(t, core.StringList{}, p.Tags)
	assert.Contains(t, rec.Body.String(), `"achievements":[]`)
}

func TestHandler_CreateValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"summary":"S","description":"D","achievements":[],"tags":[],"color":"primary"}`},
		{"unknown color", `{"title":"T","summary":"S","description":"D","achievements":[],"tags":[],"color":"purple"}`},
		{"missing tags", `{"title":"T","summary":"S","description":"D","achievements":[],"color":"primary"}`},
		{"wrong type", `{"title":7,"summary":"S","description":"D","achievements":[],"tags":[],"color":"primary"}`},
		{"not json", `title=T`},
		{"trailing garbage", `{"title":"T","summary":"S","description":"D","achievements":[],"tags":[],"color":"primary"}garbage`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/projects", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errBody core.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
			assert.Equal(t, "Invalid project data", errBody.Message)
		})
	}
}

func TestHandler_UpdatePartial(t *testing.T) {
	router := newTestRouter(t)

	created := do(t, router, http.MethodPost, "/api/projects", validBody)
	require.Equal(t, http.StatusCreated, created.Code)
	var before ProjectResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &before))

	path := "/api/projects/" + strconv.FormatInt(before.ID, 10)
	rec := do(t, router, http.MethodPut, path, `{"title":"New title","extra":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var after ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Equal(t, "New title", after.Title)
	assert.Equal(t, before.Summary, after.Summary)
	assert.Equal(t, before.Color, after.Color)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestHandler_UpdateRejectsNullAndBadColor(t *testing.T) {
	router := newTestRouter(t)

	created := do(t, router, http.MethodPost, "/api/projects", validBody)
	var p ProjectResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &p))
	path := "/api/projects/" + strconv.FormatInt(p.ID, 10)

	assert.Equal(t, http.StatusBadRequest,
		do(t, router, http.MethodPut, path, `{"title":null}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(t, router, http.MethodPut, path, `{"color":"purple"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(t, router, http.MethodPut, path, `["title"]`).Code)
}

func TestHandler_NotFound(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/projects/999", ""},
		{http.MethodGet, "/api/projects/abc", ""},
		{http.MethodGet, "/api/projects/-1", ""},
		{http.MethodPut, "/api/projects/999", `{"title":"x"}`},
		{http.MethodDelete, "/api/projects/999", ""},
	} {
		rec := do(t, router, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method+" "+tc.path)

		var errBody core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
		assert.Equal(t, "Project not found", errBody.Message)
	}
}

func TestHandler_DeleteThenGet(t *testing.T) {
	router := newTestRouter(t)

	created := do(t, router, http.MethodPost, "/api/projects", validBody)
	var p ProjectResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &p))
	path := "/api/projects/" + strconv.FormatInt(p.ID, 10)

	rec := do(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, path, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, path, "").Code)
}

func TestHandler_ListReturnsArray(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	do(t, router, http.MethodPost, "/api/projects", validBody)
	do(t, router, http.MethodPost, "/api/projects", validBody)

	var list []ProjectResponse
	rec = do(t, router, http.MethodGet, "/api/projects", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)
}
