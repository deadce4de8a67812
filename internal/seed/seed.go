// AngelaMos | 2026
// seed.go

// Package seed loads the initial portfolio content into an empty database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-backend/internal/certification"
	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/education"
	"github.com/carterperez-dev/portfolio-backend/internal/experience"
	"github.com/carterperez-dev/portfolio-backend/internal/project"
	"github.com/carterperez-dev/portfolio-backend/internal/skill"
	"github.com/carterperez-dev/portfolio-backend/internal/tool"
	"github.com/carterperez-dev/portfolio-backend/internal/user"
)

// Owner is the optional site owner account created alongside the content.
type Owner struct {
	Username string
	Password string
	Email    *string
}

type Result struct {
	Skipped bool           `json:"skipped"`
	Counts  map[string]int `json:"counts"`
	OwnerID int64          `json:"owner_id,omitempty"`
}

type Seeder struct {
	db        *sqlx.DB
	validator *validator.Validate
	logger    *slog.Logger
}

func New(db *sqlx.DB, v *validator.Validate, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{db: db, validator: v, logger: logger}
}

// Run inserts the portfolio content unless projects already exist. The
// owner account is handled independently, so rerunning with an owner on a
// seeded database only adds the account.
func (s *Seeder) Run(ctx context.Context, owner *Owner) (*Result, error) {
	res := &Result{Counts: map[string]int{}}

	existing, err := project.NewRepository(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing projects: %w", err)
	}

	if len(existing) > 0 {
		s.logger.InfoContext(ctx, "database already seeded",
			"projects", len(existing),
		)
		res.Skipped = true
	} else if err := s.seedContent(ctx, res); err != nil {
		return nil, err
	}

	if owner != nil {
		id, err := s.ensureOwner(ctx, *owner)
		if err != nil {
			return nil, err
		}
		res.OwnerID = id
	}

	return res, nil
}

func (s *Seeder) seedContent(ctx context.Context, res *Result) error {
	projectRepo := project.NewRepository(s.db)
	for _, p := range projects() {
		if err := projectRepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Title, err)
		}
		res.Counts["projects"]++
	}

	skillRepo := skill.NewRepository(s.db)
	for _, sk := range skills() {
		if err := skillRepo.Create(ctx, &sk); err != nil {
			return fmt.Errorf("seed skill %q: %w", sk.Name, err)
		}
		res.Counts["skills"]++
	}

	toolRepo := tool.NewRepository(s.db)
	for _, t := range tools() {
		if err := toolRepo.Create(ctx, &t); err != nil {
			return fmt.Errorf("seed tool %q: %w", t.Name, err)
		}
		res.Counts["tools"]++
	}

	certRepo := certification.NewRepository(s.db)
	for _, c := range certifications() {
		if err := certRepo.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed certification %q: %w", c.Name, err)
		}
		res.Counts["certifications"]++
	}

	expRepo := experience.NewRepository(s.db)
	for _, e := range experiences() {
		if err := expRepo.Create(ctx, &e); err != nil {
			return fmt.Errorf("seed experience %q: %w", e.Company, err)
		}
		res.Counts["experiences"]++
	}

	eduRepo := education.NewRepository(s.db)
	for _, e := range educations() {
		if err := eduRepo.Create(ctx, &e); err != nil {
			return fmt.Errorf("seed education %q: %w", e.Institution, err)
		}
		res.Counts["educations"]++
	}

	s.logger.InfoContext(ctx, "database seeded", "counts", res.Counts)
	return nil
}

func (s *Seeder) ensureOwner(ctx context.Context, owner Owner) (int64, error) {
	svc := user.NewService(user.NewRepository(s.db), s.validator)

	existing, err := svc.GetByUsername(ctx, owner.Username)
	if err == nil {
		s.logger.InfoContext(ctx, "owner account exists", "username", owner.Username)
		return existing.ID, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return 0, fmt.Errorf("look up owner: %w", err)
	}

	u, err := svc.Create(ctx, user.CreateUserRequest{
		Username: owner.Username,
		Password: owner.Password,
		Email:    owner.Email,
	})
	if err != nil {
		return 0, fmt.Errorf("create owner: %w", err)
	}

	s.logger.InfoContext(ctx, "owner account created", "username", u.Username)
	return u.ID, nil
}
