package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/officehours/officehours/internal/clock"
	"github.com/officehours/officehours/internal/config"
	"github.com/officehours/officehours/internal/hook"
	"github.com/officehours/officehours/internal/locklog"
	"github.com/officehours/officehours/internal/logger"
	"github.com/officehours/officehours/internal/osutil"
	"github.com/officehours/officehours/internal/pathutil"
	"github.com/officehours/officehours/internal/registry"
	"github.com/officehours/officehours/internal/report"
	"github.com/officehours/officehours/internal/server"
	"github.com/officehours/officehours/internal/session"
	"github.com/officehours/officehours/internal/timeutil"
	"github.com/officehours/officehours/internal/ui"
)

const (
	envNoColor            = "NO_COLOR"
	envOfficehoursNoColor = "OFFICEHOURS_NO_COLOR"

	closeHookTimeout = time.Minute
)

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithPaths(
			pathutil.ConfigFilePath(),
			pathutil.LogFilePath(),
			pathutil.LockLogFilePath(),
		),
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

func lockLogOptions(cfg *config.Config, now time.Time) (locklog.Options, error) {
	loc, err := cfg.LockLog.Location()
	if err != nil {
		return locklog.Options{}, err
	}

	return locklog.Options{
		Location: loc,
		Now:      now,
		Layouts:  cfg.LockLog.Layouts,
	}, nil
}

// serveAction handles the serve command which exposes the session registry
// over HTTP until the process is interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	closer, err := logger.Setup(cfg)
	if err != nil {
		return err
	}

	defer closer.Close()

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	log := slog.Default()

	hooks := hook.NewRunner(cfg.Session.CloseCmd, closeHookTimeout, log)

	reg := registry.New(
		clock.System{},
		registry.WithLogger(log),
		registry.WithCloseHook(hooks.Fire),
	)

	srv := server.New(reg, clock.System{}, cfg.Server, log)

	pterm.Info.Printfln("Serving sessions on http://%s", cfg.Server.Addr())

	err = srv.Run(sigCtx)

	hooks.Wait()

	return err
}

// analyzeAction replays one or more lock logs and reports every session found
// in them.
func analyzeAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var c clock.Clock = clock.System{}

	now := time.Now()

	if s := ctx.String("now"); s != "" {
		now, err = timeutil.FromStr(s, now)
		if err != nil {
			return err
		}

		c = clock.NewMock(now)
	}

	opts, err := lockLogOptions(cfg, now)
	if err != nil {
		return err
	}

	files := ctx.Args().Slice()
	if len(files) == 0 {
		if cfg.LockLog.Path == "" {
			return errNoLockLog
		}

		files = []string{cfg.LockLog.Path}
	}

	var sessions []*session.Session

	for _, f := range files {
		s, err := locklog.Load(f, opts)
		if err != nil {
			return err
		}

		sessions = append(sessions, s...)
	}

	reports := make([]session.Report, len(sessions))
	for i, s := range sessions {
		reports[i] = s.Report(c)
	}

	if ctx.Bool("json") {
		return printJSON(reports)
	}

	if len(reports) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printReports(config.Stdout, reports, cfg.Display.TimeFormat())

	return nil
}

// logAction handles the log command which appends a single event to the lock
// log.
func logAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errMissingKind
	}

	kind, err := locklog.ParseKind(ctx.Args().First())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.LockLog.Path == "" {
		return errNoLockLog
	}

	at := time.Now()

	if s := ctx.String("at"); s != "" {
		at, err = timeutil.FromStr(s, at)
		if err != nil {
			return err
		}
	}

	opts, err := lockLogOptions(cfg, at)
	if err != nil {
		return err
	}

	e := session.Event{Time: at, Kind: kind}

	err = locklog.AppendFile(cfg.LockLog.Path, e, opts)
	if err != nil {
		return err
	}

	slog.Debug(
		"event logged",
		slog.String("kind", kind.String()),
		slog.Time("time", at),
		slog.String("file", cfg.LockLog.Path),
	)

	return nil
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(osutil.Editor(), cfg.System.ConfigPath)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func printJSON(reports []session.Report) error {
	summaries := make([]report.Summary, len(reports))
	for i := range reports {
		summaries[i] = report.New("", reports[i])
	}

	b, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(config.Stdout, string(b))

	return err
}

func beforeAction(ctx *cli.Context) error {
	cli.AppHelpTemplate = helpText()

	ui.StyleErrors()

	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	if _, exists := os.LookupEnv(envOfficehoursNoColor); exists {
		ui.DisableStyling()
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	return pathutil.Initialize()
}
