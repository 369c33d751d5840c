package logger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officehours/officehours/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestNewWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "officehours.log")

	l, closer, err := New(path, config.LogConfig{Level: "info", MaxSize: 1})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("session created", slog.String("id", "s1"))

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(b, &line))

	assert.Equal(t, "session created", line["msg"])
	assert.Equal(t, "s1", line["id"])
	assert.NotContains(t, string(b), "hidden")
}

func TestNewWithoutPath(t *testing.T) {
	l, closer, err := New("", config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.NoError(t, closer.Close())
}
