package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for managing bearer authentication tokens.
type TokenService interface {
	// GenerateToken creates a signed token embedding the user's identifier
	// and username, valid for a fixed seven days from issuance.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// ValidateToken verifies the provided token string and extracts its
	// claims. Verification is all-or-nothing: any failure (malformed input,
	// bad signature, expiry) yields an error and no claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded payload of a verified token.
type Claims struct {
	// UserID is the identifier of the user the token was issued for,
	// in its opaque string form.
	UserID string `json:"uid"`

	// Username is the user's display name at issuance time.
	Username string `json:"username"`

	// Timing fields from the registered claims.
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
