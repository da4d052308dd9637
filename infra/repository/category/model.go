package category

import (
	"time"

	"github.com/autoconnect/backend/pkg/domain/category"
	"github.com/google/uuid"
)

// Category represents a category row. CategoryID is the client-supplied key.
type Category struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID string    `gorm:"column:category_id;size:64;not null;uniqueIndex"`
	Name       string    `gorm:"size:128;not null"`
	Type       string    `gorm:"size:16;not null"`
	Color      string    `gorm:"size:32;not null"`
	Icon       string    `gorm:"size:64;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Category) TableName() string {
	return "categories"
}

func fromDomain(c *category.Category) *Category {
	return &Category{
		ID:         c.ID,
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       string(c.Type),
		Color:      c.Color,
		Icon:       c.Icon,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *Category) toDomain() *category.Category {
	return &category.Category{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Type:       category.Type(m.Type),
		Color:      m.Color,
		Icon:       m.Icon,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
