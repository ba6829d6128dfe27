package store

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// PostFilter describes the optional constraints and window for a post listing.
type PostFilter struct {
	// CategoryID, when non-empty, restricts results to posts filed under the
	// category with this exact identifier.
	CategoryID string

	// Offset is the number of posts to skip (already newest-first ordered).
	Offset int

	// Limit caps the number of posts returned.
	Limit int
}

// PostUpdate carries the mutable fields of a post. Nil fields are left
// untouched by Update; only title and content are ever mutable.
type PostUpdate struct {
	Title   *string
	Content *string
}

// PostStore defines the interface for post data persistence.
//
// Methods addressing a single post take the identifier as the raw string the
// client supplied. An identifier that cannot be parsed is reported as
// ErrPostNotFound, exactly like an identifier that parses but names no row;
// callers must not be able to tell the two apart.
type PostStore interface {
	// Create saves a new post to the store.
	// Returns validation errors from the domain Post if data is invalid.
	// Returns ErrInvalidEntity if the author or category does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// List retrieves posts matching the filter, ordered newest-first by
	// creation time. An unknown category simply yields no results, but a
	// category identifier the store cannot parse is an error.
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, error)

	// Count returns the total number of posts matching the filter,
	// ignoring the filter's Offset and Limit.
	Count(ctx context.Context, filter PostFilter) (int, error)

	// GetByID retrieves a post by its identifier.
	// Returns ErrPostNotFound if the post does not exist or the identifier
	// is unparseable.
	GetByID(ctx context.Context, id string) (*domain.Post, error)

	// Update applies the non-nil fields of update to the post and returns
	// the post as stored afterwards. Returns ErrPostNotFound if the post
	// does not exist (including when it was deleted concurrently) or the
	// identifier is unparseable.
	Update(ctx context.Context, id string, update PostUpdate) (*domain.Post, error)

	// Delete removes a post from the store by its identifier.
	// Returns ErrPostNotFound if the post does not exist or the identifier
	// is unparseable. This operation is permanent.
	Delete(ctx context.Context, id string) error
}
