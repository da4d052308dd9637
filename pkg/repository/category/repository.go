package category

import (
	"context"

	"github.com/autoconnect/backend/pkg/domain/category"
	"github.com/google/uuid"
)

// Repository defines data access for categories.
type Repository interface {
	Create(ctx context.Context, c *category.Category) error
	Get(ctx context.Context, id uuid.UUID) (*category.Category, error)
	List(ctx context.Context) ([]*category.Category, error)
	Update(ctx context.Context, c *category.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
