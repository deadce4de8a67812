// AngelaMos | 2026
// service.go

package tool

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

func (s *Service) List(ctx context.Context) ([]Tool, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Tool, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateToolRequest) (*Tool, error) {
	t := &Tool{Name: req.Name, Icon: req.Icon, Tags: req.Tags.V.Normalize()}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateToolRequest,
) (*Tool, error) {
	return s.repo.Update(ctx, id, req.ToPatch())
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("delete tool %d: %w", id, core.ErrNotFound)
	}
	return nil
}
