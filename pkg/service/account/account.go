// Package account orchestrates bank account writes and reads.
package account

import (
	"context"
	"log/slog"

	"github.com/autoconnect/backend/pkg/domain/account"
	repoaccount "github.com/autoconnect/backend/pkg/repository/account"
	"github.com/autoconnect/backend/pkg/utils"
	"github.com/google/uuid"
)

// Service provides bank account operations. Every write is attempted once.
type Service struct {
	repo   repoaccount.Repository
	logger *slog.Logger
}

// New creates a new account Service.
func New(repo repoaccount.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create validates the input and persists a new account. Validation errors
// wrap domain.ErrValidation; anything else comes from the repository.
func (s *Service) Create(ctx context.Context, p account.NewParams) (*account.BankAccount, error) {
	log := s.logger.With(
		"handler", "CreateAccount",
		"user_id", p.UserID,
		"bank_name", p.BankName,
		"account_number", utils.MaskCardNumber(p.AccountNumber),
	)
	acc, err := account.New(p)
	if err != nil {
		log.Warn("account rejected", "error", err)
		return nil, err
	}
	if err := s.repo.Create(ctx, acc); err != nil {
		log.Error("account not saved", "error", err)
		return nil, err
	}
	log.Info("account created", "account_id", acc.ID)
	return acc, nil
}

// Get returns one account.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*account.BankAccount, error) {
	return s.repo.Get(ctx, id)
}

// List returns all accounts, or only those of userID when it is set.
func (s *Service) List(ctx context.Context, userID *uuid.UUID) ([]*account.BankAccount, error) {
	if userID != nil {
		return s.repo.ListByUser(ctx, *userID)
	}
	return s.repo.List(ctx)
}

// Update merges u into the stored account and saves it.
func (s *Service) Update(ctx context.Context, id uuid.UUID, u account.Update) (*account.BankAccount, error) {
	log := s.logger.With("handler", "UpdateAccount", "account_id", id)
	acc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := acc.Apply(u); err != nil {
		log.Warn("update rejected", "error", err)
		return nil, err
	}
	if err := s.repo.Update(ctx, acc); err != nil {
		log.Error("update not saved", "error", err)
		return nil, err
	}
	log.Info("account updated", "status", acc.Status)
	return acc, nil
}

// Delete hard-deletes an account.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("account deleted", "account_id", id)
	return nil
}
