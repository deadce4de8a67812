// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	repo      Repository
	validator *validator.Validate
}

func NewService(repo Repository, v *validator.Validate) *Service {
	return &Service{repo: repo, validator: v}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Create validates req, hashes the password and stores the user. A taken
// username surfaces as core.ErrDuplicateKey.
func (s *Service) Create(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf(
			"%w: %s",
			core.ErrInvalidInput,
			core.FormatValidationError(err),
		)
	}

	hash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Username: req.Username,
		Password: hash,
		Email:    req.Email,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// CheckCredentials returns the user when password matches the stored hash.
func (s *Service) CheckCredentials(
	ctx context.Context,
	username, password string,
) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, core.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := core.VerifyPassword(password, u.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
