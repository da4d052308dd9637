// Package auth authenticates users and issues JWTs.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/domain/user"
	repouser "github.com/autoconnect/backend/pkg/repository/user"
	"github.com/autoconnect/backend/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Service struct {
	repo   repouser.Repository
	cfg    *config.Jwt
	logger *slog.Logger

	dummyOnce sync.Once
	dummy     string
}

func New(repo repouser.Repository, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, logger: logger}
}

// Login resolves identity (username or email) and checks the password.
// Any mismatch is reported as user.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, identity, password string) (*user.User, error) {
	log := s.logger.With("context", "Login", "identity", identity)
	log.Debug("Login called")

	u, err := s.repo.GetByIdentity(ctx, identity)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error("Login failed", "error", err)
			return nil, err
		}
		u = nil
	}
	if u == nil {
		_ = utils.CheckPasswordHash(password, s.dummyHash())
		log.Warn("Login failed", "error", user.ErrInvalidCredentials)
		return nil, user.ErrInvalidCredentials
	}
	if !u.CheckPassword(password) {
		log.Warn("Login failed", "error", user.ErrInvalidCredentials)
		return nil, user.ErrInvalidCredentials
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

// dummyHash is checked when the identity is unknown. It is hashed at
// utils.PasswordCost so both paths cost the same bcrypt work.
func (s *Service) dummyHash() string {
	s.dummyOnce.Do(func() {
		h, err := utils.HashPassword(uuid.NewString())
		if err != nil {
			s.logger.Error("failed to hash dummy password", "error", err)
			return
		}
		s.dummy = h
	})
	return s.dummy
}

// GenerateToken signs an HS256 token carrying the user's identity.
func (s *Service) GenerateToken(u *user.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": u.Username,
		"email":    u.Email,
		"user_id":  u.ID.String(),
		"exp":      time.Now().Add(s.cfg.Expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", err
	}
	return signed, nil
}

// GetCurrentUserID extracts the user_id claim from a verified token.
func (s *Service) GetCurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	if token == nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		s.logger.Warn("GetCurrentUserID failed", "error", err)
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
