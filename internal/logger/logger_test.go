package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContext_FallsBackToGlobal ensures an empty context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithKV_AttachesFields checks that fields added to the context reach the output.
func TestWithKV_AttachesFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "trigger")
	ctx = WithKV(ctx, "parameter", "Shock")

	InfoKV(ctx, "Trigger admitted", "intensity", 42)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "trigger", entries[0].LoggerName)
	require.Equal(t, "Shock", entries[0].ContextMap()["parameter"])
	require.EqualValues(t, 42, entries[0].ContextMap()["intensity"])
}

// TestWithLevel_OverridesSharedLevel ensures the option lets a logger go below the shared level.
func TestWithLevel_OverridesSharedLevel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	l := zap.New(core, WithLevel(zapcore.DebugLevel)).Sugar()

	l.Debug("packet received")
	require.Equal(t, 1, logs.Len())
}
