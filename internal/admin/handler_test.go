// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/testutil"
)

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Route("/api", h.RegisterRoutes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGetSystemStats(t *testing.T) {
	db := testutil.Database(t)
	_, err := db.DB.Exec(
		`INSERT INTO tools (name, icon, tags) VALUES ('Go', 'go.svg', '["backend"]')`,
	)
	require.NoError(t, err)

	h := NewHandler(HandlerConfig{
		DBStats: db.Stats,
		DBPing:  db.Ping,
		ContentCounts: func(ctx context.Context) (map[string]int, error) {
			return db.CountRows(ctx, core.ContentTables...)
		},
	})

	rec := serve(h, "/api/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body SystemStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 1, body.Content["tools"])
	assert.Equal(t, 0, body.Content["projects"])
	assert.Len(t, body.Content, len(core.ContentTables))
	assert.True(t, body.Database.Healthy)
	require.NotNil(t, body.Database.Stats)
	assert.Nil(t, body.Redis)
	assert.NotEmpty(t, body.Runtime.GoVersion)
}

func TestGetSystemStats_CountFailure(t *testing.T) {
	h := NewHandler(HandlerConfig{
		ContentCounts: func(context.Context) (map[string]int, error) {
			return nil, errors.New("boom")
		},
	})

	rec := serve(h, "/api/admin/stats")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestGetRedisStats_NotConfigured(t *testing.T) {
	rec := serve(NewHandler(HandlerConfig{}), "/api/admin/stats/redis")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRuntimeStats(t *testing.T) {
	rec := serve(NewHandler(HandlerConfig{}), "/api/admin/stats/runtime")
	require.Equal(t, http.StatusOK, rec.Code)

	var body RuntimeStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Positive(t, body.NumCPU)
}
