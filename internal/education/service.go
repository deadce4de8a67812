// AngelaMos | 2026
// service.go

package education

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Education, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Education, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateEducationRequest,
) (*Education, error) {
	e := &Education{
		Institution: req.Institution,
		Degree:      req.Degree,
		Period:      req.Period,
		Description: req.Description,
		Color:       req.Color,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateEducationRequest,
) (*Education, error) {
	return s.repo.Update(ctx, id, Patch(req))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("delete education %d: %w", id, core.ErrNotFound)
	}
	return nil
}
