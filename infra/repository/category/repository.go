package category

import (
	"context"

	infrarepo "github.com/autoconnect/backend/infra/repository"
	"github.com/autoconnect/backend/pkg/domain/category"
	repo "github.com/autoconnect/backend/pkg/repository/category"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a category repository backed by GORM.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *category.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(fromDomain(c)).Error
	})
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var m Category
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

func (r *repository) List(ctx context.Context) ([]*category.Category, error) {
	var rows []Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]*category.Category, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toDomain())
	}
	return result, nil
}

func (r *repository) Update(ctx context.Context, c *category.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).
		Model(&Category{}).
		Where("id = ?", c.ID).
		Select("*").
		Omit("id", "category_id", "created_at").
		Updates(fromDomain(c))
	return infrarepo.RequireAffected(tx)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return infrarepo.RequireAffected(r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id))
}
