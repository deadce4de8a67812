// AngelaMos | 2026
// handler.go

package certification

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
	r.Route("/certifications", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	certs, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, r, err, "Failed to fetch certifications")
		return
	}

	core.OK(w, ToCertificationResponseList(certs))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCertificationRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.ValidationFailed(w, r, err, "Invalid certification data")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err, "Invalid certification data")
		return
	}

	c, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, r, err, "Failed to create certification")
		return
	}

	core.Created(w, ToCertificationResponse(c))
}
