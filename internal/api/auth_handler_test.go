package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/mocks"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(users store.UserStore) *AuthHandler {
	hasher := auth.NewBcryptHasher(4) // minimal cost for test speed
	return NewAuthHandler(
		users,
		&mocks.MockTokenService{Token: "signed-token"},
		hasher,
		hasher,
		testLogger(),
	)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest("POST", path, bytes.NewReader(b)))
	return recorder
}

func TestRegister(t *testing.T) {
	t.Parallel()

	validRequest := RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "a-long-password",
	}

	t.Run("successful registration returns a token", func(t *testing.T) {
		t.Parallel()

		var created *domain.User
		users := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				created = user
				return nil
			},
		}
		handler := newAuthHandler(users)

		recorder := postJSON(t, handler.Register, "/api/auth/register", validRequest)

		require.Equal(t, http.StatusCreated, recorder.Code)
		require.NotNil(t, created)
		assert.NotEqual(t, "a-long-password", created.HashedPassword)

		var response AuthResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, created.ID.String(), response.UserID)
		assert.Equal(t, "alice", response.Username)
		assert.Equal(t, "signed-token", response.Token)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		t.Parallel()

		users := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				return store.ErrEmailExists
			},
		}
		handler := newAuthHandler(users)

		recorder := postJSON(t, handler.Register, "/api/auth/register", validRequest)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			req  RegisterRequest
		}{
			{name: "missing username", req: RegisterRequest{Email: "a@b.co", Password: "a-long-password"}},
			{name: "bad email", req: RegisterRequest{Username: "alice", Email: "nope", Password: "a-long-password"}},
			{name: "short password", req: RegisterRequest{Username: "alice", Email: "a@b.co", Password: "short"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				users := &mocks.MockUserStore{}
				handler := newAuthHandler(users)

				recorder := postJSON(t, handler.Register, "/api/auth/register", tt.req)
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Zero(t, users.CreateCalls)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(4)
	hashed, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	user, err := domain.NewUser("alice", "alice@example.com", hashed)
	require.NoError(t, err)

	foundUsers := &mocks.MockUserStore{
		GetByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, store.ErrUserNotFound
		},
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(foundUsers)
		recorder := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "alice@example.com",
			Password: "correct-password",
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		var response AuthResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, user.ID.String(), response.UserID)
		assert.Equal(t, "signed-token", response.Token)
	})

	t.Run("unknown email and wrong password respond identically", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(foundUsers)

		unknown := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-password",
		})
		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
	})
}
