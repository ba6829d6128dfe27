package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	categoryID := uuid.New()

	t.Run("valid post", func(t *testing.T) {
		t.Parallel()

		post, err := NewPost(authorID, categoryID, "Test Post", "some content")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, post.ID)
		assert.Equal(t, "Test Post", post.Title)
		assert.Equal(t, "some content", post.Content)
		assert.Equal(t, "test-post", post.Slug)
		assert.Equal(t, authorID, post.AuthorID)
		assert.Equal(t, categoryID, post.CategoryID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name       string
			authorID   uuid.UUID
			categoryID uuid.UUID
			title      string
			content    string
			wantErr    error
		}{
			{
				name:       "empty title",
				authorID:   authorID,
				categoryID: categoryID,
				content:    "content",
				wantErr:    ErrEmptyPostTitle,
			},
			{
				name:       "empty content",
				authorID:   authorID,
				categoryID: categoryID,
				title:      "title",
				wantErr:    ErrEmptyPostContent,
			},
			{
				name:       "missing author",
				categoryID: categoryID,
				title:      "title",
				content:    "content",
				wantErr:    ErrEmptyPostAuthor,
			},
			{
				name:     "missing category",
				authorID: authorID,
				title:    "title",
				content:  "content",
				wantErr:  ErrEmptyPostCategory,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := NewPost(tt.authorID, tt.categoryID, tt.title, tt.content)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "single word", title: "Hello", want: "hello"},
		{name: "simple title", title: "Test Post", want: "test-post"},
		{name: "multiple spaces collapse", title: "A   Spaced    Title", want: "a-spaced-title"},
		{name: "tabs and newlines", title: "Mixed\tWhitespace\nHere", want: "mixed-whitespace-here"},
		{name: "already lowercase", title: "already-slugged", want: "already-slugged"},
		{name: "uppercase preserved punctuation", title: "Go 1.23 Released!", want: "go-1.23-released!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
