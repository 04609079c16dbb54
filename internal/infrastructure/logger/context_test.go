package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext_FromContext(t *testing.T) {
	t.Run("round trips a logger through context", func(t *testing.T) {
		logger := zap.NewNop()
		ctx := WithContext(context.Background(), logger)
		assert.Same(t, logger, FromContext(ctx))
	})

	t.Run("returns no-op logger when context carries none", func(t *testing.T) {
		got := FromContext(context.Background())
		require.NotNil(t, got)
		// must be safe to use
		got.Info("no-op")
	})
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")
	enriched.Info("hello")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])

	// the enriched logger is also retrievable from the context
	assert.Same(t, enriched, FromContext(ctx))
}

func TestWithUserID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithUserID(context.Background(), logger, "user-9")
	enriched.Info("hello")

	assert.Equal(t, "user-9", GetUserID(ctx))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "user-9", logs.All()[0].ContextMap()["user_id"])
}

func TestGetRequestID_Empty(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
	assert.Equal(t, "", GetUserID(context.Background()))
}
