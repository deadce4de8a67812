// AngelaMos | 2026
// handler.go

package contact

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

const msgInvalidForm = "Invalid form data"

type Handler struct {
	service     *Service
	validator   *validator.Validate
	submitDelay time.Duration
}

// NewHandler wires the contact routes. submitDelay is held after a
// successful submission before replying, so the client's sending state is
// visible; zero disables it.
func NewHandler(
	service *Service,
	v *validator.Validate,
	submitDelay time.Duration,
) *Handler {
	return &Handler{
		service:     service,
		validator:   v,
		submitDelay: submitDelay,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.Submit)

	r.Route("/contact-submissions", func(r chi.Router) {
		r.Get("/", h.List)
		r.Put("/{id}/read", h.MarkRead)
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateSubmissionRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.ValidationFailed(w, r, err, msgInvalidForm)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err, msgInvalidForm)
		return
	}

	sub, err := h.service.Submit(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, r, err, "Failed to send message")
		return
	}

	if h.submitDelay > 0 {
		timer := time.NewTimer(h.submitDelay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-r.Context().Done():
			slog.DebugContext(r.Context(), "client left during submit delay",
				"submission_id", sub.ID)
			return
		}
	}

	core.Created(w, CreateSubmissionResponse{
		Message: SuccessMessage,
		ID:      sub.ID,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, r, err, "Failed to fetch submissions")
		return
	}

	core.OK(w, ToSubmissionResponseList(subs))
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := core.ParseID(chi.URLParam(r, "id"))
	if !ok {
		core.NotFound(w, "Submission")
		return
	}

	sub, err := h.service.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Submission")
			return
		}
		core.InternalServerError(w, r, err, "Failed to update submission")
		return
	}

	core.OK(w, ToSubmissionResponse(sub))
}
