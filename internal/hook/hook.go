// Package hook runs the user's close command after a session ends.
package hook

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/sourcegraph/conc"

	"github.com/officehours/officehours/internal/session"
)

// Env returns the OFFICEHOURS_* variables describing rep.
func Env(id string, rep session.Report) []string {
	seconds := func(d time.Duration) string {
		return strconv.FormatInt(int64(d/time.Second), 10)
	}

	return []string{
		"OFFICEHOURS_SESSION_ID=" + id,
		"OFFICEHOURS_START=" + rep.Start.Format(time.RFC3339),
		"OFFICEHOURS_END=" + rep.End.Format(time.RFC3339),
		"OFFICEHOURS_TOTAL=" + seconds(rep.Total),
		"OFFICEHOURS_WORKING=" + seconds(rep.Working),
		"OFFICEHOURS_RESTING=" + seconds(rep.Resting),
	}
}

// Run executes cmdStr with the session figures in its environment. An empty
// command is a no-op.
func Run(ctx context.Context, cmdStr, id string, rep session.Report) error {
	if cmdStr == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(cmdStr)
	if err != nil {
		return fmt.Errorf("unable to parse close_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), Env(id, rep)...)

	return cmd.Run()
}

// Runner runs the close command in the background for each closed session.
// Wait blocks until every command started so far has finished.
type Runner struct {
	log     *slog.Logger
	wg      conc.WaitGroup
	cmd     string
	timeout time.Duration
}

// NewRunner returns a Runner for cmdStr. Each command is cancelled after
// timeout.
func NewRunner(cmdStr string, timeout time.Duration, log *slog.Logger) *Runner {
	return &Runner{
		cmd:     cmdStr,
		timeout: timeout,
		log:     log,
	}
}

// Fire starts the close command for the session identified by id. It matches
// registry.CloseHook.
func (r *Runner) Fire(id string, rep session.Report) {
	if strings.TrimSpace(r.cmd) == "" {
		return
	}

	r.wg.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		err := Run(ctx, r.cmd, id, rep)
		if err != nil {
			r.log.Error(
				"close command failed",
				slog.String("session", id),
				slog.Any("error", err),
			)
		}
	})
}

// Wait blocks until all started commands have returned.
func (r *Runner) Wait() {
	r.wg.Wait()
}
