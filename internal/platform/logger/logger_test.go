package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"component": "reminders"})

	l.Warn("send failed", map[string]any{"dog_id": "d1", "err": errors.New("boom"), "": "skip"})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "reminders", ctx["component"])
		assert.Equal(t, "d1", ctx["dog_id"])
		assert.Equal(t, "boom", ctx["err"])
		assert.NotContains(t, ctx, "")
	}
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://app:***@db:5432/dogs", RedactDSN("postgres://app:secret@db:5432/dogs"))
	assert.Equal(t, "memory://", RedactDSN("memory://"))
	assert.Equal(t, "redis://cache:6379/0", RedactDSN("redis://cache:6379/0"))
}
