package logger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
}

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		l, err := New(Config{Level: "info", Format: format})
		require.NoError(t, err, format)
		require.NotNil(t, l)
	}
}

func TestFieldsReachCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromCore(core).Named("analysis").With(String("request_id", "abc"))

	l.Warn("upstream fallback",
		String("reason", "timeout"),
		Int("text_len", 42),
		Bool("ai", true),
		Duration("elapsed", time.Second),
		Err(errors.New("deadline exceeded")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "upstream fallback", entry.Message)
	assert.Equal(t, "analysis", entry.LoggerName)

	ctx := entry.ContextMap()
	assert.Equal(t, "abc", ctx["request_id"])
	assert.Equal(t, "timeout", ctx["reason"])
	assert.Equal(t, int64(42), ctx["text_len"])
	assert.Equal(t, true, ctx["ai"])
	assert.Equal(t, "deadline exceeded", ctx["error"])
}

func TestErrNil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("ignored", String("k", "v"))
	assert.NotNil(t, l.With(String("a", "b")))
	assert.NotNil(t, l.Named("x"))
	assert.NoError(t, l.Sync())
}
