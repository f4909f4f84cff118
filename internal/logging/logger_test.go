package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldsReachZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := SetLogger(zap.New(core))
	defer restore()

	Info("battle completed", Fields{"battle_id": "b-1", "turns": 3})
	Error("battle failed", errors.New("boom"), nil)
	Debug("tick", nil)
	Warn("slow replay", Fields{"delay_ms": 1000})

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, "battle completed", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "b-1", ctx["battle_id"])
	assert.EqualValues(t, 3, ctx["turns"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
}

func TestSetLevel(t *testing.T) {
	defer func() { _ = SetLevel("info") }()

	require.NoError(t, SetLevel("DEBUG"))
	assert.Equal(t, zapcore.DebugLevel, level.Level())
	require.NoError(t, SetLevel(""))
	assert.Equal(t, zapcore.DebugLevel, level.Level())
	assert.Error(t, SetLevel("loud"))
}
