// Package category orchestrates category writes and reads.
package category

import (
	"context"
	"log/slog"

	"github.com/autoconnect/backend/pkg/domain/category"
	repocategory "github.com/autoconnect/backend/pkg/repository/category"
	"github.com/google/uuid"
)

type Service struct {
	repo   repocategory.Repository
	logger *slog.Logger
}

func New(repo repocategory.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateParams are the client-supplied category fields.
type CreateParams struct {
	CategoryID string
	Name       string
	Type       category.Type
	Color      string
	Icon       string
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*category.Category, error) {
	log := s.logger.With("handler", "CreateCategory", "categoryid", p.CategoryID)
	c, err := category.New(p.CategoryID, p.Name, p.Type, p.Color, p.Icon)
	if err != nil {
		log.Warn("category rejected", "error", err)
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("category not saved", "error", err)
		return nil, err
	}
	log.Info("category created", "id", c.ID)
	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*category.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, u category.Update) (*category.Category, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(u); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("category update not saved", "id", id, "error", err)
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
