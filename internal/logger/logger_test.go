package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		t.Run(lvl, func(t *testing.T) {
			require.NoError(t, Initialize(lvl))
			assert.NotSame(t, originalLog, Log)
			assert.NotPanics(t, func() { Log.Infow("date saved", "date_id", 1) })
		})
	}

	assert.Error(t, Initialize("not-a-level"))
}

func TestInitializeWithEncoding(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	for _, enc := range []string{"json", "console"} {
		t.Run(enc, func(t *testing.T) {
			assert.NoError(t, InitializeWithEncoding("debug", enc))
			assert.NotPanics(t, func() {
				Log.Debugw("encoded", "encoding", enc)
				Sync()
			})
		})
	}

	assert.Error(t, InitializeWithEncoding("loud", "console"))
	assert.Error(t, InitializeWithEncoding("info", "xml"))
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() { Log.Infow("nop logger test") })
}

func TestFromContext(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	core, logs := observer.New(zap.InfoLevel)
	Log = zap.New(core).Sugar()

	// no logger in context falls back to Log
	FromContext(context.Background()).Info("global")

	scoped := Log.With("request_id", "abc")
	ctx := WithContext(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx))
	FromContext(ctx).Info("scoped")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].ContextMap())
	assert.Equal(t, "abc", entries[1].ContextMap()["request_id"])
}
