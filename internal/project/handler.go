// AngelaMos | 2026
// handler.go

package project

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

const (
	resourceName   = "Project"
	msgInvalidData = "Invalid project data"
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
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, r, err, "Failed to fetch projects")
		return
	}

	core.OK(w, ToProjectResponseList(projects))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := core.ParseID(chi.URLParam(r, "id"))
	if !ok {
		core.NotFound(w, resourceName)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, resourceName)
			return
		}
		core.InternalServerError(w, r, err, "Failed to fetch project")
		return
	}

	core.OK(w, ToProjectResponse(p))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.ValidationFailed(w, r, err, msgInvalidData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err, msgInvalidData)
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, r, err, "Failed to create project")
		return
	}

	core.Created(w, ToProjectResponse(p))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := core.ParseID(chi.URLParam(r, "id"))
	if !ok {
		core.NotFound(w, resourceName)
		return
	}

	var req UpdateProjectRequest
	if err := core.DecodePartial(w, r, &req); err != nil {
		core.ValidationFailed(w, r, err, msgInvalidData)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err, msgInvalidData)
		return
	}

	p, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, resourceName)
			return
		}
		core.InternalServerError(w, r, err, "Failed to update project")
		return
	}

	core.OK(w, ToProjectResponse(p))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := core.ParseID(chi.URLParam(r, "id"))
	if !ok {
		core.NotFound(w, resourceName)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, resourceName)
			return
		}
		core.InternalServerError(w, r, err, "Failed to delete project")
		return
	}

	core.NoContent(w)
}
