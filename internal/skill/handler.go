// AngelaMos | 2026
// handler.go

package skill

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service, v *validator.Validate) *Handler {
	return &Handler{
		service:   service,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/skills", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

// List honours an optional ?type= filter. Any value is accepted and
// compared by equality, so an unknown type simply matches nothing.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		core.InternalServerError(w, r, err, "Failed to fetch skills")
		return
	}

	core.OK(w, ToSkillResponseList(skills))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSkillRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.ValidationFailed(w, r, err, "Invalid skill data")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err, "Invalid skill data")
		return
	}

	sk, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, r, err, "Failed to create skill")
		return
	}

	core.Created(w, ToSkillResponse(sk))
}
