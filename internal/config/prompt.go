package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm/putils"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Port     string
	CloseCmd string
}

// WithPromptConfig returns an Option that asks for the most common settings
// when officehours runs for the first time in an interactive terminal. It
// does nothing if the config file already exists or stdin is not a terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		f, ok := Stdin.(*os.File)
		if !ok || !isatty.IsTerminal(f.Fd()) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{Port: "8000"}

	_ = putils.BulletListFromString(`Follow the prompts below to configure officehours for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'officehours edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API port").
				Value(&opts.Port).
				Validate(func(s string) error {
					_, err := parsePort(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Command to run when a session is closed (optional)").
				Value(&opts.CloseCmd),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port < minPort || port > maxPort {
		return 0, errInvalidPort.Fmt(minPort, maxPort, port)
	}

	return port, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	port, err := parsePort(opts.Port)
	if err != nil {
		return err
	}

	c.Server.Port = port
	c.Session.CloseCmd = opts.CloseCmd

	return nil
}
