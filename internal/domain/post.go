package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common post validation errors
var (
	ErrEmptyPostID       = errors.New("post ID cannot be empty")
	ErrEmptyPostTitle    = errors.New("post title cannot be empty")
	ErrEmptyPostContent  = errors.New("post content cannot be empty")
	ErrEmptyPostAuthor   = errors.New("post author cannot be empty")
	ErrEmptyPostCategory = errors.New("post category cannot be empty")
)

// whitespaceRuns matches one or more consecutive whitespace characters.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// Post represents a blog post authored by a registered user.
// The author reference is fixed at creation time and never changes; update
// operations only touch Title and Content (the slug keeps its creation-time
// value and is not guaranteed unique).
type Post struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Slug       string    `json:"slug"`
	AuthorID   uuid.UUID `json:"author_id"`
	CategoryID uuid.UUID `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewPost creates a new Post with the given author, category, title, and
// content. It generates a new UUID for the post ID, derives the slug from the
// title, and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewPost(authorID, categoryID uuid.UUID, title, content string) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		ID:         uuid.New(),
		Title:      title,
		Content:    content,
		Slug:       Slugify(title),
		AuthorID:   authorID,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}
	if p.Title == "" {
		return ErrEmptyPostTitle
	}
	if p.Content == "" {
		return ErrEmptyPostContent
	}
	if p.AuthorID == uuid.Nil {
		return ErrEmptyPostAuthor
	}
	if p.CategoryID == uuid.Nil {
		return ErrEmptyPostCategory
	}
	return nil
}

// Slugify derives a URL slug from a post title by lowercasing it and
// replacing each run of whitespace with a single hyphen. The result is
// deterministic but not guaranteed unique across posts.
func Slugify(title string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(title), "-")
}
