// AngelaMos | 2026
// service.go

package skill

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

func (s *Service) List(ctx context.Context, skillType string) ([]Skill, error) {
	return s.repo.List(ctx, skillType)
}

func (s *Service) Get(ctx context.Context, id int64) (*Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateSkillRequest,
) (*Skill, error) {
	sk := &Skill{
		Name:       req.Name,
		Percentage: *req.Percentage,
		Type:       req.Type,
	}
	if err := s.repo.Create(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateSkillRequest,
) (*Skill, error) {
	return s.repo.Update(ctx, id, req.ToPatch())
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("delete skill %d: %w", id, core.ErrNotFound)
	}
	return nil
}
