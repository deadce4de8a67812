// AngelaMos | 2026
// handler_test.go

package certification

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

func TestHandler_CreateUsesSnakeCasePath(t *testing.T) {
	h := NewHandler(NewService(NewRepository(testutil.OpenDB(t))), core.NewValidator())
	r := chi.NewRouter()
	r.Route("/api", h.RegisterRoutes)

	body := `{"name":"AWS SAA","description":"Cloud","details":"SAA-C03",` +
		`"icon":"aws","color":"accent","certificate_path":"/certs/aws.pdf"}`
	req := httptest.NewRequest(http.MethodPost, "/api/certifications", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "/certs/aws.pdf", got["certificate_path"])
	assert.Contains(t, got, "createdAt")

	req = httptest.NewRequest(http.MethodPost, "/api/certifications",
		strings.NewReader(`{"name":"x","description":"d","details":"d","icon":"i","color":"red"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
