// AngelaMos | 2026
// service.go

package project

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateProjectRequest,
) (*Project, error) {
	ctx, span := core.StartSpan(ctx, "project.Create")
	defer span.End()

	p := req.ToProject()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("project.id", p.ID))

	return p, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateProjectRequest,
) (*Project, error) {
	ctx, span := core.StartSpan(ctx, "project.Update",
		attribute.Int64("project.id", id))
	defer span.End()

	return s.repo.Update(ctx, id, req.ToPatch())
}

// Delete returns core.ErrNotFound when no project has the id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := core.StartSpan(ctx, "project.Delete",
		attribute.Int64("project.id", id))
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("delete project %d: %w", id, core.ErrNotFound)
	}
	return nil
}
