package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", "", "nop"} {
		t.Run(mode, func(t *testing.T) {
			l, err := New(mode)
			require.NoError(t, err)
			require.NotNil(t, l)
			l.Info("hello", "mode", mode)
		})
	}
}

func TestLogger_RedactsCredentials(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	l.Info("image search", "unsplash_access_key", "abc123", "query", "puppies")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "[REDACTED]", fields["unsplash_access_key"])
	assert.Equal(t, "puppies", fields["query"])
}

func TestLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("component", "deck")

	l.Debug("built")
	l.Warn("short", "count", 3)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "deck", logs.All()[0].ContextMap()["component"])
	assert.Equal(t, int64(3), logs.All()[1].ContextMap()["count"])
}

func TestSanitizeKVs_OddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	assert.Equal(t, []interface{}{"a", 1, "dangling"}, out)
}
