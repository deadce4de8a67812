// AngelaMos | 2026
// handler_test.go

package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/testutil"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []any
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func newTestRouter(
	t *testing.T,
	pub *recordingPublisher,
	delay time.Duration,
) http.Handler {
	t.Helper()

	svc := NewService(NewRepository(testutil.OpenDB(t)), pub)
	h := NewHandler(svc, core.NewValidator(), delay)

	r := chi.NewRouter()
	r.Route("/api", h.RegisterRoutes)
	return r
}

func submit(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func contactBody(name, email, message string) string {
	b, _ := json.Marshal(map[string]string{
		"name":    name,
		"email":   email,
		"message": message,
	})
	return string(b)
}

func TestHandler_SubmitValidationBoundary(t *testing.T) {
	router := newTestRouter(t, &recordingPublisher{}, 0)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"message 9 chars", contactBody("Ada", "a@b.com", "123456789"), http.StatusBadRequest},
		{"message 10 chars", contactBody("Ada", "a@b.com", "1234567890"), http.StatusCreated},
		{"bad email", contactBody("Ada", "not-an-email", "1234567890"), http.StatusBadRequest},
		{"short name", contactBody("A", "a@b.com", "1234567890"), http.StatusBadRequest},
		{"two char name", contactBody("Al", "a@b.com", "1234567890"), http.StatusCreated},
		{"missing email", `{"name":"Ada","message":"1234567890"}`, http.StatusBadRequest},
		{"numeric message", `{"name":"Ada","email":"a@b.com","message":1234567890}`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := submit(t, router, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())

			if tc.want == http.StatusBadRequest {
				var errBody core.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
				assert.Equal(t, "Invalid form data", errBody.Message)
			}
		})
	}
}

func TestHandler_SubmitRespondsWithIDAndPublishes(t *testing.T) {
	pub := &recordingPublisher{}
	router := newTestRouter(t, pub, 0)

	rec := submit(t, router,
		`{"name":"Ada","email":"a@b.com","subject":"Hi","message":"Let's build something","extra":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateSubmissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, SuccessMessage, resp.Message)
	assert.Positive(t, resp.ID)

	require.Len(t, pub.events, 1)
	event, ok := pub.events[0].(SubmittedEvent)
	require.True(t, ok)
	assert.Equal(t, resp.ID, event.ID)
	assert.Equal(t, "a@b.com", event.Email)
}

func TestHandler_PublishFailureDoesNotFailSubmit(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	router := newTestRouter(t, pub, 0)

	rec := submit(t, router, contactBody("Ada", "a@b.com", "1234567890"))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_SubmitWaitsForDelay(t *testing.T) {
	router := newTestRouter(t, &recordingPublisher{}, 50*time.Millisecond)

	start := time.Now()
	rec := submit(t, router, contactBody("Ada", "a@b.com", "1234567890"))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestHandler_SubmitDelayHonoursCancellation(t *testing.T) {
	router := newTestRouter(t, &recordingPublisher{}, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(contactBody("Ada", "a@b.com", "1234567890"))).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		router.ServeHTTP(rec, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not return after cancellation")
	}
}

func TestHandler_MarkRead(t *testing.T) {
	router := newTestRouter(t, &recordingPublisher{}, 0)

	rec := submit(t, router, contactBody("Ada", "a@b.com", "1234567890"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created CreateSubmissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	path := "/api/contact-submissions/" + strconv.FormatInt(created.ID, 10) + "/read"
	for range 2 {
		req := httptest.NewRequest(http.MethodPut, path, nil)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var sub SubmissionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
		assert.True(t, sub.Read)
	}

	for _, p := range []string{
		"/api/contact-submissions/999/read",
		"/api/contact-submissions/abc/read",
	} {
		req := httptest.NewRequest(http.MethodPut, p, nil)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var errBody core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
		assert.Equal(t, "Submission not found", errBody.Message)
	}
}

func TestHandler_ListSubmissions(t *testing.T) {
	router := newTestRouter(t, &recordingPublisher{}, 0)

	submit(t, router, contactBody("Ada", "a@b.com", "1234567890"))
	submit(t, router, contactBody("Bob", "b@b.com", "0987654321"))

	req := httptest.NewRequest(http.MethodGet, "/api/contact-submissions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var subs []SubmissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 2)
	assert.Equal(t, "Ada", subs[0].Name)
	assert.False(t, subs[0].Read)
	assert.Nil(t, subs[0].Subject)
}
