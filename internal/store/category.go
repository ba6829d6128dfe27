package store

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category to the store.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its identifier.
	// Returns ErrCategoryNotFound if the category does not exist or the
	// identifier is unparseable.
	GetByID(ctx context.Context, id string) (*domain.Category, error)

	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]*domain.Category, error)
}
