package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "post not found", err: store.ErrPostNotFound, want: http.StatusNotFound},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "category not found", err: store.ErrCategoryNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrPostNotFound), want: http.StatusNotFound},
		{name: "email exists", err: store.ErrEmailExists, want: http.StatusConflict},
		{name: "username exists", err: store.ErrUsernameExists, want: http.StatusConflict},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "unknown fault", err: errors.New("disk full"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: "An unexpected error occurred"},
		{name: "post not found", err: store.ErrPostNotFound, want: "Post not found"},
		{name: "email exists", err: store.ErrEmailExists, want: "Email already exists"},
		{name: "invalid token", err: auth.ErrInvalidToken, want: "Invalid token"},
		// Faults surface their own message in the body.
		{name: "fault", err: errors.New("disk full"), want: "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}
