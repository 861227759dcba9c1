package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ersonp/kinpuzzle/internal/domain/ports"
)

var _ ports.Logger = (*Logger)(nil)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		level   string
		enabled zapcore.Level
	}{
		{"development debug", "development", "debug", zapcore.DebugLevel},
		{"production warn", "production", "warn", zapcore.WarnLevel},
		{"unknown mode falls back to development", "weird", "info", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.mode, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.enabled, l.SugaredLogger.Level())
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("development", "loud")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := NewNop().With("seed", 1)
	assert.NotPanics(t, func() {
		l.Info("generated", "facts", 3)
		l.Sync()
	})
}

func TestWith_AttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := &Logger{SugaredLogger: zap.New(core).Sugar()}

	child := base.With("command", "generate")
	child.Info("puzzle generated", "seed", int64(42))
	child.Error("puzzle decode failed", "path", "p.json")
	base.Debug("plain")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, map[string]interface{}{"command": "generate", "seed": int64(42)}, entries[0].ContextMap())
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "generate", entries[1].ContextMap()["command"])
	assert.NotContains(t, entries[2].ContextMap(), "command")
}
