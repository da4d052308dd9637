package user

import (
	"context"

	infrarepo "github.com/autoconnect/backend/infra/repository"
	"github.com/autoconnect/backend/pkg/domain/user"
	repo "github.com/autoconnect/backend/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *user.User) error {
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(fromDomain(u)).Error
	})
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var m User
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

func (r *repository) GetByIdentity(ctx context.Context, identity string) (*user.User, error) {
	var m User
	if err := r.db.WithContext(
		ctx,
	).Where("username = ? OR email = ?", identity, identity).First(&m).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}
