package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/officehours/officehours/internal/clock"
	"github.com/officehours/officehours/internal/config"
	"github.com/officehours/officehours/internal/locklog"
	"github.com/officehours/officehours/internal/session"
	"github.com/officehours/officehours/internal/timeutil"
	"github.com/officehours/officehours/internal/ui"
)

// watcher reprints the latest session of a lock log whenever the file
// changes, and on every tick while that session is still running.
type watcher struct {
	clock      clock.Clock
	out        io.Writer
	path       string
	timeFormat string
	opts       locklog.Options
	interval   time.Duration
}

// watchAction handles the watch command.
func watchAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	path := cfg.LockLog.Path
	if ctx.NArg() > 0 {
		path = ctx.Args().First()
	}

	if path == "" {
		return errNoLockLog
	}

	interval := ctx.Duration("interval")
	if interval <= 0 {
		return errWatchInterval.Fmt(interval)
	}

	opts, err := lockLogOptions(cfg, time.Time{})
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	w := &watcher{
		clock:      clock.System{},
		out:        config.Stdout,
		path:       path,
		timeFormat: cfg.Display.TimeFormat(),
		opts:       opts,
		interval:   interval,
	}

	return w.run(sigCtx)
}

func (w *watcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	defer fw.Close()

	// Editors and log rotation replace the file, so the directory is watched
	// rather than the file itself.
	err = fw.Add(filepath.Dir(w.path))
	if err != nil {
		return err
	}

	target := filepath.Clean(w.path)

	w.refresh()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.refresh()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != target {
				continue
			}

			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.refresh()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			slog.Warn("lock log watcher error", slog.Any("error", err))
		}
	}
}

// refresh reloads the lock log and prints its latest session. Errors are
// printed rather than returned since the file may be mid-write.
func (w *watcher) refresh() {
	rep, err := w.latest()
	if err != nil {
		ui.Error(err)
		return
	}

	fmt.Fprintln(w.out, statusLine(rep, w.timeFormat))
}

func (w *watcher) latest() (session.Report, error) {
	opts := w.opts
	opts.Now = w.clock.Now()

	sessions, err := locklog.Load(w.path, opts)
	if err != nil {
		return session.Report{}, err
	}

	if len(sessions) == 0 {
		return session.Report{}, errNoSessions.Fmt(w.path)
	}

	return sessions[len(sessions)-1].Report(w.clock), nil
}

// statusLine summarises rep on a single line.
func statusLine(rep session.Report, timeFormat string) string {
	state := rep.State.String()

	switch rep.State {
	case session.StateWorking:
		state = ui.Green(state)
	case session.StateResting:
		state = ui.Yellow(state)
	}

	return fmt.Sprintf(
		"%s  %s  working %s  resting %s  total %s",
		rep.Start.Format(timeFormat),
		state,
		timeutil.FormatClock(rep.Working),
		timeutil.FormatClock(rep.Resting),
		timeutil.FormatClock(rep.Total),
	)
}
