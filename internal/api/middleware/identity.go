package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// IdentityMiddleware resolves the identity of every incoming request from an
// optional bearer token.
//
// It never rejects a request: a missing Authorization header, a wrong scheme,
// or a token that fails verification all resolve to anonymous and the request
// proceeds. Each handler decides for itself whether anonymity is acceptable,
// so the 401-versus-public distinction lives in the handler and token parsing
// lives here.
type IdentityMiddleware struct {
	tokens auth.TokenService
}

// NewIdentityMiddleware creates a new IdentityMiddleware with the given
// token service.
func NewIdentityMiddleware(tokens auth.TokenService) *IdentityMiddleware {
	return &IdentityMiddleware{tokens: tokens}
}

// Resolve attempts to verify a bearer token and, on success, attaches the
// resolved identity to the request context. On any failure the request
// continues anonymously.
func (m *IdentityMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Debug("authorization header present but not bearer scheme")
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.tokens.ValidateToken(r.Context(), parts[1])
		if err != nil {
			// Invalid or expired credential; the request proceeds anonymously
			// and any 401 is the handler's decision.
			log.Debug("bearer token failed verification, continuing as anonymous",
				slog.String("reason", err.Error()))
			next.ServeHTTP(w, r)
			return
		}

		ctx := shared.WithIdentity(r.Context(), shared.Identity{UserID: claims.UserID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
