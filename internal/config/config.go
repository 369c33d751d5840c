// Package config loads officehours settings from the config file, the
// environment and command-line flags.
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Server  ServerConfig  `mapstructure:"server"`
		Log     LogConfig     `mapstructure:"log"`
		Session SessionConfig `mapstructure:"session"`
		LockLog LockLogConfig `mapstructure:"locklog"`
		Display DisplayConfig `mapstructure:"display"`
		System  SystemConfig  `mapstructure:"-"`
	}

	// ServerConfig holds HTTP API settings.
	ServerConfig struct {
		Host              string        `mapstructure:"host"`
		Port              int           `mapstructure:"port"`
		ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
		ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	}

	// LogConfig holds settings for the rotating log file.
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
	}

	// SessionConfig holds session-related settings.
	SessionConfig struct {
		CloseCmd string `mapstructure:"close_cmd"`
	}

	// LockLogConfig describes the screen-lock log read by analyze and watch.
	LockLogConfig struct {
		Path     string   `mapstructure:"path"`
		Timezone string   `mapstructure:"timezone"`
		Layouts  []string `mapstructure:"layouts"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		TwentyFourHour bool `mapstructure:"twenty_four_hour"`
		DarkTheme      bool `mapstructure:"dark_theme"`
	}

	// SystemConfig holds computed paths. It is never written to the config
	// file.
	SystemConfig struct {
		ConfigPath  string
		LogPath     string
		LockLogPath string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Addr returns the host:port the API listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Location resolves the configured timezone for lock log timestamps.
func (l LockLogConfig) Location() (*time.Location, error) {
	if l.Timezone == "" || l.Timezone == "Local" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, errInvalidTimezone.Fmt(l.Timezone).Wrap(err)
	}

	return loc, nil
}

// TimeFormat returns the layout used to print clock times.
func (d DisplayConfig) TimeFormat() string {
	if d.TwentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

// New creates a new Config and applies options in order. The result is
// validated before it is returned.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths records the config, log and lock log file locations. The lock
// log location becomes the default for locklog.path.
func WithPaths(configPath, logPath, lockLogPath string) Option {
	return func(c *Config) error {
		c.System.ConfigPath = configPath
		c.System.LogPath = logPath
		c.System.LockLogPath = lockLogPath

		return nil
	}
}
