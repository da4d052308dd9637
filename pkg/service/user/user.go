// Package user provides user registration and lookup.
package user

import (
	"context"
	"log/slog"

	"github.com/autoconnect/backend/pkg/domain/user"
	repouser "github.com/autoconnect/backend/pkg/repository/user"
	"github.com/google/uuid"
)

// Service provides user operations.
type Service struct {
	repo   repouser.Repository
	logger *slog.Logger
}

// New creates a new Service.
func New(repo repouser.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateUser validates and stores a new user. A taken username or email
// surfaces as domain.ErrAlreadyExists from the repository.
func (s *Service) CreateUser(
	ctx context.Context,
	username, email, password, names string,
) (*user.User, error) {
	log := s.logger.With("context", "CreateUser", "username", username)
	u, err := user.New(username, email, password, names)
	if err != nil {
		log.Warn("user rejected", "error", err)
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		log.Error("user not saved", "error", err)
		return nil, err
	}
	log.Info("user created", "userID", u.ID)
	return u, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.Get(ctx, id)
}
