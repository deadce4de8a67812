// AngelaMos | 2026
// service.go

package certification

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

func (s *Service) List(ctx context.Context) ([]Certification, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Certification, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateCertificationRequest,
) (*Certification, error) {
	c := req.ToCertification()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateCertificationRequest,
) (*Certification, error) {
	return s.repo.Update(ctx, id, req.ToPatch())
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("delete certification %d: %w", id, core.ErrNotFound)
	}
	return nil
}
