package config

import (
	"slices"
	"strings"
)

const (
	minPort = 1
	maxPort = 65535
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLog(); err != nil {
		return err
	}

	return c.validateLockLog()
}

func (c *Config) validateServer() error {
	if c.Server.Port < minPort || c.Server.Port > maxPort {
		return errInvalidPort.Fmt(minPort, maxPort, c.Server.Port)
	}

	if c.Server.ReadHeaderTimeout <= 0 {
		return errInvalidTimeout.Fmt(
			"server.read_header_timeout",
			c.Server.ReadHeaderTimeout,
		)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return errInvalidTimeout.Fmt(
			"server.shutdown_timeout",
			c.Server.ShutdownTimeout,
		)
	}

	return nil
}

func (c *Config) validateLog() error {
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	rotation := map[string]int{
		"max_size":    c.Log.MaxSize,
		"max_backups": c.Log.MaxBackups,
		"max_age":     c.Log.MaxAge,
	}

	for name, v := range rotation {
		if v < 0 {
			return errInvalidLogRotation.Fmt(name)
		}
	}

	return nil
}

func (c *Config) validateLockLog() error {
	for _, layout := range c.LockLog.Layouts {
		if strings.TrimSpace(layout) == "" {
			return errEmptyLayout
		}
	}

	_, err := c.LockLog.Location()

	return err
}
