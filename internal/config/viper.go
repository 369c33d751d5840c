package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/officehours/officehours/internal/locklog"
)

const envPrefix = "OFFICEHOURS"

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyServerHost              = "server.host"
	keyServerPort              = "server.port"
	keyServerReadHeaderTimeout = "server.read_header_timeout"
	keyServerShutdownTimeout   = "server.shutdown_timeout"
	keyLogLevel                = "log.level"
	keyLogMaxSize              = "log.max_size"
	keyLogMaxBackups           = "log.max_backups"
	keyLogMaxAge               = "log.max_age"
	keySessionCloseCmd         = "session.close_cmd"
	keyLockLogPath             = "locklog.path"
	keyLockLogTimezone         = "locklog.timezone"
	keyLockLogLayouts          = "locklog.layouts"
	keyTwentyFourHour          = "display.twenty_four_hour"
	keyDarkTheme               = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper. The
// config file is created with default values if it does not exist yet.
// OFFICEHOURS_* environment variables override file values
// (e.g. OFFICEHOURS_SERVER_PORT).
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and values gathered by earlier
// options such as the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyServerHost, "localhost")
	v.SetDefault(keyServerPort, 8000)
	v.SetDefault(keyServerReadHeaderTimeout, "5s")
	v.SetDefault(keyServerShutdownTimeout, "10s")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 10)
	v.SetDefault(keyLogMaxBackups, 3)
	v.SetDefault(keyLogMaxAge, 28)
	v.SetDefault(keySessionCloseCmd, "")
	v.SetDefault(keyLockLogPath, c.System.LockLogPath)
	v.SetDefault(keyLockLogTimezone, "Local")
	v.SetDefault(keyLockLogLayouts, locklog.DefaultLayouts)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyDarkTheme, true)

	if c.Server.Port != 0 {
		v.Set(keyServerPort, c.Server.Port)
	}

	if c.Session.CloseCmd != "" {
		v.Set(keySessionCloseCmd, c.Session.CloseCmd)
	}

	if c.LockLog.Path != "" {
		v.Set(keyLockLogPath, c.LockLog.Path)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	system := c.System

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.System = system

	return nil
}
