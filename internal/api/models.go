package api

import (
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
)

// CreatePostRequest is the request body for creating a post.
// All three fields are required; the slug and author are derived server-side.
type CreatePostRequest struct {
	Title    string `json:"title"    validate:"required"`
	Content  string `json:"content"  validate:"required"`
	Category string `json:"category" validate:"required"`
}

// UpdatePostRequest is the request body for updating a post. Both fields are
// optional; absent fields are left untouched (partial update), and an explicit
// empty string counts as absent. Only title and content are mutable; author,
// category, and slug are fixed at creation.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// PostResponse is the wire representation of a post. Every identifier (the
// post's own, the author reference, the category reference) is a plain
// string; the store's native identifier type never crosses this boundary.
type PostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListPostsResponse is the paginated envelope for post listings.
type ListPostsResponse struct {
	Posts       []PostResponse `json:"posts"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Total       int            `json:"total"`
}

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryResponse is the wire representation of a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// postToResponse converts a domain.Post to its wire representation.
// This is the single serialization boundary for posts: all reference fields
// are converted to strings here and nowhere else.
func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Content:   post.Content,
		Slug:      post.Slug,
		Author:    post.AuthorID.String(),
		Category:  post.CategoryID.String(),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// postsToResponse converts a slice of posts, always yielding a non-nil slice
// so an empty listing serializes as [] rather than null.
func postsToResponse(posts []*domain.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, postToResponse(post))
	}
	return responses
}

func categoryToResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}

func categoriesToResponse(categories []*domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, categoryToResponse(category))
	}
	return responses
}
