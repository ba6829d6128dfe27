package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		ctx := WithIdentity(context.Background(), Identity{UserID: "user-123"})

		identity, ok := IdentityFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "user-123", identity.UserID)
	})

	t.Run("absent identity is anonymous", func(t *testing.T) {
		t.Parallel()

		identity, ok := IdentityFromContext(context.Background())
		assert.False(t, ok)
		assert.Empty(t, identity.UserID)
	})
}

func TestTraceIDContext(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		assert.Len(t, traceID, TraceIDLength*2)
	})

	t.Run("missing trace ID yields empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("trace IDs are unique", func(t *testing.T) {
		t.Parallel()

		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}
