package user

import (
	"context"

	"github.com/autoconnect/backend/pkg/domain/user"
	"github.com/google/uuid"
)

// Repository defines data access for users.
type Repository interface {
	Create(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	// GetByIdentity looks a user up by username or email.
	GetByIdentity(ctx context.Context, identity string) (*user.User, error)
}
