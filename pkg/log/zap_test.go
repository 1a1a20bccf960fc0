package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := Replace(zap.New(core))

	Info("loaded", zap.Int("provinces", 38))
	Debug("hidden")
	Warnf("skipped %d records", 2)
	Errorw("failed", "code", "11")
	restore()
	Info("after restore")

	entries := logs.AllUntimed()
	assert.Len(t, entries, 3)
	assert.Equal(t, "loaded", entries[0].Message)
	assert.Equal(t, int64(38), entries[0].ContextMap()["provinces"])
	assert.Equal(t, "skipped 2 records", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "11", entries[2].ContextMap()["code"])
}
