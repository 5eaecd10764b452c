package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestWithContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_MissingLoggerReturnsNop(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	// Must not panic
	logger.Info("noop")
}

func TestWithRequestID(t *testing.T) {
	logger, logs := newObservedLogger()

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))

	enriched.Info("hello")
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
}

func TestWithUserID(t *testing.T) {
	logger, logs := newObservedLogger()

	ctx, enriched := WithUserID(context.Background(), logger, "user-42")

	assert.Equal(t, "user-42", GetUserID(ctx))

	enriched.Info("hello")
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "user-42", entries[0].ContextMap()["user_id"])
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetSpanID(context.Background()))
}

func TestWithTraceContext_NoSpanReturnsSameLogger(t *testing.T) {
	logger := zap.NewNop()
	assert.Same(t, logger, WithTraceContext(context.Background(), logger))
}

func TestContextLogger(t *testing.T) {
	t.Run("injects request and user fields", func(t *testing.T) {
		logger, logs := newObservedLogger()

		ctx := WithContext(context.Background(), logger)
		ctx, _ = WithRequestID(ctx, FromContext(ctx), "req-9")
		ctx, _ = WithUserID(ctx, FromContext(ctx), "user-9")

		L(ctx).Info("from context logger")

		entries := logs.All()
		require.NotEmpty(t, entries)
		last := entries[len(entries)-1]
		assert.Equal(t, "from context logger", last.Message)
		assert.Equal(t, "req-9", last.ContextMap()["request_id"])
		assert.Equal(t, "user-9", last.ContextMap()["user_id"])
	})

	t.Run("With adds fields to children", func(t *testing.T) {
		logger, logs := newObservedLogger()

		cl := WithLogger(context.Background(), logger).With(zap.String("component", "sweeper"))
		cl.Warn("child entry")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "sweeper", entries[0].ContextMap()["component"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		cl := WithLogger(context.Background(), nil)
		cl.Info("still fine")
	})
}
