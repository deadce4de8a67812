// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// JSONError renders err. Anything that is not an *AppError is treated as an
// internal fault and its detail is withheld from the client.
func JSONError(w http.ResponseWriter, err error) {
	appErr := GetAppError(err)
	if appErr == nil {
		appErr = InternalError(err)
	}

	JSON(w, appErr.StatusCode, ErrorResponse{
		Message: appErr.Message,
		Code:    appErr.Code,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, ValidationError(message))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource))
}

func TooManyRequests(w http.ResponseWriter) {
	JSONError(w, RateLimitError())
}

// InternalServerError logs err with the request's context, marks the active
// span as failed and replies 500 with message.
func InternalServerError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	message string,
) {
	ctx := r.Context()
	slog.ErrorContext(ctx, message,
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(ctx),
	)
	SetSpanError(ctx, err)

	JSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: message,
		Code:    "INTERNAL_ERROR",
	})
}

// ValidationFailed logs the field-level detail of err at WARN and replies
// 400 with the generic message only.
func ValidationFailed(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	message string,
) {
	ctx := r.Context()
	slog.WarnContext(ctx, message,
		"detail", FormatValidationError(err),
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(ctx),
	)

	BadRequest(w, message)
}
