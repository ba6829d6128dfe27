package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCategoryID   = errors.New("category ID cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)

// Category is a label posts are filed under. Posts reference categories by ID.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategory creates a new Category with the given name.
func NewCategory(name string) (*Category, error) {
	category := &Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	return nil
}
