// AngelaMos | 2026
// service.go

package contact

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/notify"
)

type Service struct {
	repo      Repository
	publisher notify.Publisher
}

func NewService(repo Repository, publisher notify.Publisher) *Service {
	if publisher == nil {
		publisher = notify.Noop{}
	}
	return &Service{repo: repo, publisher: publisher}
}

func (s *Service) List(ctx context.Context) ([]Submission, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Submission, error) {
	return s.repo.GetByID(ctx, id)
}

// Submit stores the submission and then announces it. A failed
// announcement is logged and does not fail the submission.
func (s *Service) Submit(
	ctx context.Context,
	req CreateSubmissionRequest,
) (*Submission, error) {
	ctx, span := core.StartSpan(ctx, "contact.Submit")
	defer span.End()

	sub := &Submission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("contact.id", sub.ID))

	event := SubmittedEvent{
		ID:        sub.ID,
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		CreatedAt: sub.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, EventSubmitted, event); err != nil {
		slog.WarnContext(ctx, "failed to publish contact event",
			"error", err,
			"submission_id", sub.ID,
		)
	}

	return sub, nil
}

func (s *Service) MarkRead(ctx context.Context, id int64) (*Submission, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("delete contact submission %d: %w", id, core.ErrNotFound)
	}
	return nil
}
