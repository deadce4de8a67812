// AngelaMos | 2026
// requestid.go

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID reuses an inbound X-Request-ID when it looks sane and mints a
// UUIDv4 otherwise. The id is echoed on the response and stored on the
// request context for logging.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(core.WithRequestID(r.Context(), id)))
	})
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
