// AngelaMos | 2026
// handler_test.go

package education

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/testutil"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	h := NewHandler(NewService(NewRepository(testutil.OpenDB(t))), core.NewValidator())
	r := chi.NewRouter()
	r.Route("/api", h.RegisterRoutes)
	return r
}

func send(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateAndList(t *testing.T) {
	r := newRouter(t)

	rec := send(r, http.MethodPost, "/api/educations",
		`{"institution":"MIT","degree":"BSc","period":"2010 - 2014",`+
			`"description":"CS","color":"primary","extra":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created EducationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, "MIT", created.Institution)
	assert.Contains(t, rec.Body.String(), `"createdAt"`)

	rec = send(r, http.MethodGet, "/api/educations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []EducationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestHandler_CreateValidation(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"unknown color", `{"institution":"MIT","degree":"BSc","period":"2010","description":"CS","color":"teal"}`},
		{"missing degree", `{"institution":"MIT","period":"2010","description":"CS","color":"accent"}`},
		{"wrong type", `{"institution":"MIT","degree":3,"period":"2010","description":"CS","color":"accent"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := send(r, http.MethodPost, "/api/educations", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errBody core.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
			assert.Equal(t, "Invalid education data", errBody.Message)
		})
	}

	rec := send(r, http.MethodGet, "/api/educations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
