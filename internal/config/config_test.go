package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/officehours/officehours/internal/config"
	"github.com/officehours/officehours/internal/locklog"
	"github.com/officehours/officehours/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:              "localhost",
			Port:              8000,
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Log: config.LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		LockLog: config.LockLogConfig{
			Timezone: "Local",
			Layouts:  locklog.DefaultLayouts,
		},
		Display: config.DisplayConfig{
			TwentyFourHour: true,
			DarkTheme:      true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "default config should be written on first run")

	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestDefaultLayoutsMatchLockLog(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	_, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, locklog.DefaultLayouts, cfg.LockLog.Layouts)
	assert.Contains(t, cfg.LockLog.Layouts, time.RFC3339Nano)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	want := &config.Config{
		Server: config.ServerConfig{
			Host:              "0.0.0.0",
			Port:              9090,
			ReadHeaderTimeout: 2 * time.Second,
			ShutdownTimeout:   30 * time.Second,
		},
		Log: config.LogConfig{
			Level:      "debug",
			MaxSize:    5,
			MaxBackups: 1,
			MaxAge:     7,
		},
		Session: config.SessionConfig{
			CloseCmd: `notify-send "session closed"`,
		},
		LockLog: config.LockLogConfig{
			Path:     "/var/log/officehours/sessions.log",
			Timezone: "UTC",
			Layouts:  []string{"2006/01/02-15:04"},
		},
		Display: config.DisplayConfig{
			TwentyFourHour: false,
			DarkTheme:      false,
		},
	}

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "Jan 02, 2006 03:04 PM", cfg.Display.TimeFormat())

	loc, err := cfg.LockLog.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("OFFICEHOURS_SERVER_PORT", "7070")
	t.Setenv("OFFICEHOURS_LOG_LEVEL", "warn")

	cfg, err := config.New(
		config.WithViperConfig(filepath.Join(t.TempDir(), "config.yml")),
	)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestWithPaths(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	lockPath := filepath.Join(dir, "sessions.log")

	cfg, err := config.New(
		config.WithPaths(configPath, filepath.Join(dir, "officehours.log"), lockPath),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, lockPath, cfg.LockLog.Path)
	assert.Equal(t, configPath, cfg.System.ConfigPath)
	assert.Equal(t, lockPath, cfg.System.LockLogPath)
}

func TestPromptSkippedWithoutTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	old := config.Stdin
	config.Stdin = r

	t.Cleanup(func() { config.Stdin = old })

	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
}

type cliTest struct {
	Name  string
	Flags map[string]string
	Check func(t *testing.T, cfg *config.Config)
}

var cliTestCases = []cliTest{
	{
		Name:  "override host and port",
		Flags: map[string]string{"host": "0.0.0.0", "port": "9999"},
		Check: func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, "0.0.0.0:9999", cfg.Server.Addr())
		},
	},
	{
		Name:  "override lock log and close command",
		Flags: map[string]string{"file": "/tmp/lock.log", "close-cmd": "echo done"},
		Check: func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, "/tmp/lock.log", cfg.LockLog.Path)
			assert.Equal(t, "echo done", cfg.Session.CloseCmd)
		},
	},
	{
		Name:  "no flags keeps file values",
		Flags: map[string]string{},
		Check: func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, defaultConfig(), cfg)
		},
	},
}

func TestCLIConfig(t *testing.T) {
	for _, tc := range cliTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			f := flag.NewFlagSet("serve", flag.ContinueOnError)
			_ = f.String("host", "", "")
			_ = f.Int("port", 0, "")
			_ = f.String("file", "", "")
			_ = f.String("close-cmd", "", "")
			_ = f.String("log-level", "", "")

			for k, v := range tc.Flags {
				require.NoError(t, f.Set(k, v))
			}

			ctx := cli.NewContext(&cli.App{}, f, nil)

			cfg, err := config.New(
				config.WithViperConfig(filepath.Join(t.TempDir(), "config.yml")),
				config.WithCLIConfig(ctx),
			)
			require.NoError(t, err)

			tc.Check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"port too high":        func(c *config.Config) { c.Server.Port = 70000 },
		"zero shutdown":        func(c *config.Config) { c.Server.ShutdownTimeout = 0 },
		"negative read header": func(c *config.Config) { c.Server.ReadHeaderTimeout = -time.Second },
		"unknown log level":    func(c *config.Config) { c.Log.Level = "verbose" },
		"negative backups":     func(c *config.Config) { c.Log.MaxBackups = -1 },
		"empty layout":         func(c *config.Config) { c.LockLog.Layouts = []string{" "} },
		"unknown timezone":     func(c *config.Config) { c.LockLog.Timezone = "Mars/Olympus" },
	}

	require.NoError(t, defaultConfig().Validate())

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}
