package category

import "github.com/autoconnect/backend/pkg/domain/category"

// CreateCategoryRequest is the body of POST /api/categories.
type CreateCategoryRequest struct {
	CategoryID string        `json:"categoryid" validate:"required,max=64"`
	Name       string        `json:"name" validate:"required,max=128"`
	Type       category.Type `json:"type" validate:"required"`
	Color      string        `json:"color" validate:"required,max=32"`
	Icon       string        `json:"icon" validate:"required,max=64"`
}

// UpdateCategoryRequest is the body of PUT /api/categories/:id. categoryid
// cannot be changed.
type UpdateCategoryRequest struct {
	Name  *string        `json:"name" validate:"omitempty,max=128"`
	Type  *category.Type `json:"type"`
	Color *string        `json:"color" validate:"omitempty,max=32"`
	Icon  *string        `json:"icon" validate:"omitempty,max=64"`
}

type CreateCategoryResponse struct {
	Message  string             `json:"message"`
	Category *category.Category `json:"category"`
}
