package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockPostStore implements store.PostStore for testing.
// Each method delegates to the corresponding function field; calls are
// counted so tests can assert that no mutation was attempted.
type MockPostStore struct {
	CreateFn  func(ctx context.Context, post *domain.Post) error
	ListFn    func(ctx context.Context, filter store.PostFilter) ([]*domain.Post, error)
	CountFn   func(ctx context.Context, filter store.PostFilter) (int, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.Post, error)
	UpdateFn  func(ctx context.Context, id string, update store.PostUpdate) (*domain.Post, error)
	DeleteFn  func(ctx context.Context, id string) error

	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

var _ store.PostStore = (*MockPostStore)(nil)

// Create implements store.PostStore
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}
	return nil
}

// List implements store.PostStore
func (m *MockPostStore) List(ctx context.Context, filter store.PostFilter) ([]*domain.Post, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return nil, nil
}

// Count implements store.PostStore
func (m *MockPostStore) Count(ctx context.Context, filter store.PostFilter) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, filter)
	}
	return 0, nil
}

// GetByID implements store.PostStore
func (m *MockPostStore) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrPostNotFound
}

// Update implements store.PostStore
func (m *MockPostStore) Update(ctx context.Context, id string, update store.PostUpdate) (*domain.Post, error) {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return nil, store.ErrPostNotFound
}

// Delete implements store.PostStore
func (m *MockPostStore) Delete(ctx context.Context, id string) error {
	m.DeleteCalls++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
