package app

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	hostFlag = &cli.StringFlag{
		Name:  "host",
		Usage: "Interface the API listens on (default: localhost)",
	}

	portFlag = &cli.IntFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Usage:   "Port the API listens on (default: 8000)",
	}

	closeCmdFlag = &cli.StringFlag{
		Name:    "close-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session is closed",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Minimum level written to the log file: debug, info, warn or error",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the reports as JSON",
	}

	nowFlag = &cli.StringFlag{
		Name:  "now",
		Usage: "Measure running sessions up to this time instead of the current time (e.g. '2017-01-17 18:00')",
	}

	intervalFlag = &cli.DurationFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Usage:   "How often to refresh a running session",
		Value:   time.Minute,
	}

	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Lock log to write to (default: the locklog.path setting)",
	}

	atFlag = &cli.StringFlag{
		Name:  "at",
		Usage: "Record the event at this time instead of now (e.g. '10 mins ago')",
	}
)
