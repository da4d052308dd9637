// Package category holds the income/expense Category entity.
package category

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/google/uuid"
)

// Type separates income categories from expense categories.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is income or expense.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// UnmarshalJSON rejects anything but "income", "expense" or an empty value.
func (t *Type) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.NewValidationError("type must be a string")
	}
	v := Type(s)
	if s != "" && !v.Valid() {
		return domain.NewValidationError("invalid type %q", s)
	}
	*t = v
	return nil
}

// Category is a user-defined label for transactions.
type Category struct {
	ID         uuid.UUID `json:"id"`
	CategoryID string    `json:"categoryid"`
	Name       string    `json:"name"`
	Type       Type      `json:"type"`
	Color      string    `json:"color"`
	Icon       string    `json:"icon"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// New builds a validated Category. All fields are required.
func New(categoryID, name string, typ Type, color, icon string) (*Category, error) {
	now := time.Now().UTC()
	c := &Category{
		ID:         uuid.New(),
		CategoryID: strings.TrimSpace(categoryID),
		Name:       strings.TrimSpace(name),
		Type:       typ,
		Color:      strings.TrimSpace(color),
		Icon:       strings.TrimSpace(icon),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) Validate() error {
	if c.CategoryID == "" || c.Name == "" || c.Type == "" || c.Color == "" || c.Icon == "" {
		return domain.ErrRequiredFieldsMissing
	}
	if !c.Type.Valid() {
		return domain.NewValidationError("invalid type %q", c.Type)
	}
	return nil
}

// Update holds the mutable fields. categoryid is immutable once created.
type Update struct {
	Name  *string
	Type  *Type
	Color *string
	Icon  *string
}

// Apply merges u into c; c is unchanged if the result is invalid.
func (c *Category) Apply(u Update) error {
	next := *c
	if u.Name != nil {
		next.Name = strings.TrimSpace(*u.Name)
	}
	if u.Type != nil {
		next.Type = *u.Type
	}
	if u.Color != nil {
		next.Color = strings.TrimSpace(*u.Color)
	}
	if u.Icon != nil {
		next.Icon = strings.TrimSpace(*u.Icon)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*c = next
	return nil
}
