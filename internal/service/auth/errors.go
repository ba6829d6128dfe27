package auth

import "errors"

// Sentinel errors returned by token validation. Handlers and middleware
// branch on these; any validation failure collapses into one of them so a
// caller can never learn more than "this token does not prove an identity".
var (
	// ErrInvalidToken is returned when a token is malformed, carries an
	// unexpected signing method, or fails signature verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")
)
