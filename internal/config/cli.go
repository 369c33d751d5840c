package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Host     string
	CloseCmd string
	LockLog  string
	LogLevel string
	Port     int
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were set take effect.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Host:     ctx.String("host"),
			Port:     ctx.Int("port"),
			CloseCmd: ctx.String("close-cmd"),
			LockLog:  ctx.String("file"),
			LogLevel: ctx.String("log-level"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Host != "" {
		c.Server.Host = opts.Host
	}

	if opts.Port < 0 {
		return errInvalidCLIPort.Fmt(opts.Port)
	}

	if opts.Port != 0 {
		c.Server.Port = opts.Port
	}

	if opts.CloseCmd != "" {
		c.Session.CloseCmd = opts.CloseCmd
	}

	if opts.LockLog != "" {
		c.LockLog.Path = opts.LockLog
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	return nil
}
