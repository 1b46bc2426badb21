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

func newObservedLogger() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{Logger: zap.New(core)}, logs
}

func TestCtxLoggingCarriesRequestAndUserIDs(t *testing.T) {
	l, logs := newObservedLogger()

	ctx := context.WithValue(context.Background(), RequestIdKey, "req-123")
	ctx = context.WithValue(ctx, UserIdKey, "user-456")

	l.InfofCtx(ctx, "handled %s", "request")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "handled request", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-123", fields[string(RequestIdKey)])
	assert.Equal(t, "user-456", fields[string(UserIdKey)])
}

func TestCtxLoggingWithoutValues(t *testing.T) {
	l, logs := newObservedLogger()

	l.WarnfCtx(context.Background(), "slow response")
	l.ErrorfCtx(context.Background(), "failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Empty(t, entries[0].Context)
}
