package account

import (
	"context"

	"github.com/autoconnect/backend/pkg/domain/account"
	"github.com/google/uuid"
)

// Repository defines data access for bank accounts.
type Repository interface {
	// Create inserts a new, already validated account.
	Create(ctx context.Context, acc *account.BankAccount) error

	// Get retrieves an account by its ID.
	Get(ctx context.Context, id uuid.UUID) (*account.BankAccount, error)

	// List returns every account, newest first.
	List(ctx context.Context) ([]*account.BankAccount, error)

	// ListByUser lists all accounts for a given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.BankAccount, error)

	// Update overwrites the mutable columns of an existing account.
	Update(ctx context.Context, acc *account.BankAccount) error

	// Delete hard-deletes an account.
	Delete(ctx context.Context, id uuid.UUID) error
}
