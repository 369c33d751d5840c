// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "OFFICEHOURS_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir          string
	configFileName  string
	logFileName     string
	lockLogFileName string

	// Computed absolute paths
	configFilePath  string
	logFilePath     string
	lockLogFilePath string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			appDir:          "officehours",
			configFileName:  "config.yml",
			logFileName:     "officehours.log",
			lockLogFileName: "sessions.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func LockLogFilePath() string {
	return Must().lockLogFilePath
}

// applyEnvironmentOverrides suffixes every file name with the value of
// OFFICEHOURS_ENV so that separate environments never share files.
func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = withSuffix(p.configFileName, env)
		p.logFileName = withSuffix(p.logFileName, env)
		p.lockLogFileName = withSuffix(p.lockLogFileName, env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(p.appDir, p.configFileName))
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	p.logFilePath, err = xdg.DataFile(filepath.Join(p.appDir, "log", p.logFileName))
	if err != nil {
		return fmt.Errorf("resolving log path: %w", err)
	}

	p.lockLogFilePath, err = xdg.DataFile(filepath.Join(p.appDir, p.lockLogFileName))
	if err != nil {
		return fmt.Errorf("resolving lock log path: %w", err)
	}

	return nil
}

func withSuffix(fileName, suffix string) string {
	return fmt.Sprintf("%s_%s%s", StripExtension(fileName), suffix, filepath.Ext(fileName))
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
