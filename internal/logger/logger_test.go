package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestWriterLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Debug("hidden %d", 1)
	log.Info("hidden %d", 2)
	log.Warn("excluded %d rows", 3)
	log.Error("failed: %s", "boom")

	assert.Equal(t, "[WARN] excluded 3 rows\n[ERROR] failed: boom\n", buf.String())
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "loud")
	log.Debug("hidden")
	log.Info("shown")

	assert.Equal(t, "[INFO] shown\n", buf.String())
}

func TestNop(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		l := Nop()
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}
