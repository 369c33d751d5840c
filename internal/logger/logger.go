// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/officehours/officehours/internal/config"
	"github.com/officehours/officehours/internal/osutil"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel converts a config level name to a slog.Level. Unknown names map
// to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a JSON logger writing to a rotating file at path. An empty
// path logs to stderr instead. The returned closer releases the file.
func New(path string, cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	if path == "" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return nil, nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}

	return slog.New(slog.NewJSONHandler(w, opts)), w, nil
}

// Setup builds the logger described by cfg and installs it as the default.
func Setup(cfg *config.Config) (io.Closer, error) {
	l, closer, err := New(cfg.System.LogPath, cfg.Log)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l)

	return closer, nil
}
