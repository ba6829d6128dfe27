package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

// ContextKey is the key type for context values set by this package.
type ContextKey string

// Context keys for various values
const (
	// IdentityContextKey is the context key for the resolved request identity.
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// Identity is the resolved identity of a request. It exists only for the
// duration of one request and is never persisted.
type Identity struct {
	// UserID is the authenticated user's identifier in its opaque string
	// form, as carried in the verified token claim.
	UserID string
}

// WithIdentity returns a new context carrying the resolved identity.
// Requests without a valid credential never get an identity attached; the
// absent case IS the anonymous marker.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, identity)
}

// IdentityFromContext retrieves the resolved identity from the context.
// The boolean is false for anonymous requests, which each handler decides
// how to treat; anonymity itself is not an error.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(Identity)
	return identity, ok
}

// SetTraceID adds a freshly generated trace ID to the context,
// for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random trace ID for request tracking.
// Returns a 32-character hex string.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		// rand.Read failing means the platform's entropy source is broken;
		// log it and carry on without a trace ID rather than aborting requests.
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
