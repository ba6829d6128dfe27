package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	CreateFn  func(ctx context.Context, category *domain.Category) error
	GetByIDFn func(ctx context.Context, id string) (*domain.Category, error)
	ListFn    func(ctx context.Context) ([]*domain.Category, error)

	CreateCalls int
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

// Create implements store.CategoryStore
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	return nil
}

// GetByID implements store.CategoryStore
func (m *MockCategoryStore) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrCategoryNotFound
}

// List implements store.CategoryStore
func (m *MockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
