// Package app wires the officehours command-line interface.
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/officehours/officehours/internal/config"
)

// Get retrieves the officehours app instance.
func Get() *cli.App {
	officehoursApp := &cli.App{
		Name: "officehours",
		Usage: `
		officehours measures working days. A session starts when you sit down,
		is paused whenever the screen locks, resumes on unlock, and ends when
		you stop. At any moment it reports how long you have worked and rested.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Serve the sessions HTTP API",
				Flags: []cli.Flag{
					hostFlag,
					portFlag,
					closeCmdFlag,
					logLevelFlag,
				},
				Action: serveAction,
			},
			{
				Name:      "analyze",
				Usage:     "Report working and resting time recorded in lock logs",
				ArgsUsage: "[FILE...]",
				Flags: []cli.Flag{
					jsonFlag,
					nowFlag,
				},
				Action: analyzeAction,
			},
			{
				Name:      "watch",
				Usage:     "Follow a lock log and print the current session as it changes",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					intervalFlag,
				},
				Action: watchAction,
			},
			{
				Name:      "log",
				Usage:     "Append an event (start, lock, unlock, stop) to the lock log",
				ArgsUsage: "KIND",
				Flags: []cli.Flag{
					fileFlag,
					atFlag,
				},
				Action: logAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction,
	}

	return officehoursApp
}
