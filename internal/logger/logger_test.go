package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qgcalc/internal/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logger.Level
	}{
		{"debug", logger.LevelDebug},
		{"DEBUG", logger.LevelDebug},
		{"info", logger.LevelInfo},
		{"warning", logger.LevelWarn},
		{"error", logger.LevelError},
		{"none", logger.LevelNone},
		{"bogus", logger.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logger.ParseLevel(tt.input), tt.input)
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWriter(logger.LevelWarn, &buf, "calc")

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.WithPrefix("history").Error("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], " [WARN] [calc] shown 3")
	assert.Contains(t, lines[1], " [ERROR] [calc:history] boom")
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "qgcalc.log")
	l, err := logger.New(logger.LevelInfo, path, "")
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] hello")
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	l, err := logger.New(logger.LevelDebug, "", "x")
	require.NoError(t, err)
	assert.Equal(t, logger.LevelNone, l.Level())
	l.Error("nowhere")
	assert.NoError(t, l.Close())
}
