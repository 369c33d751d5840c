package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "config_test.yml", withSuffix("config.yml", "test"))
	assert.Equal(t, "sessions_dev.log", withSuffix("sessions.log", "dev"))
	assert.Equal(t, "noext_dev", withSuffix("noext", "dev"))
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv(envName, "ci")

	p := &Paths{
		appDir:          "officehours",
		configFileName:  "config.yml",
		logFileName:     "officehours.log",
		lockLogFileName: "sessions.log",
	}

	p.applyEnvironmentOverrides()

	assert.Equal(t, "config_ci.yml", p.configFileName)
	assert.Equal(t, "officehours_ci.log", p.logFileName)
	assert.Equal(t, "sessions_ci.log", p.lockLogFileName)
}

func TestComputePaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()

	p := &Paths{
		appDir:          "officehours",
		configFileName:  "config.yml",
		logFileName:     "officehours.log",
		lockLogFileName: "sessions.log",
	}

	assert.NoError(t, p.computePaths())
	assert.Equal(t, "config.yml", filepath.Base(p.configFilePath))
	assert.Equal(t, "log", filepath.Base(filepath.Dir(p.logFilePath)))
	assert.Equal(t, "sessions.log", filepath.Base(p.lockLogFilePath))
}
