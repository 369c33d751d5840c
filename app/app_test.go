package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officehours/officehours/internal/clock"
	"github.com/officehours/officehours/internal/config"
	"github.com/officehours/officehours/internal/locklog"
	"github.com/officehours/officehours/internal/session"
	"github.com/officehours/officehours/internal/testutil"
	"github.com/officehours/officehours/internal/ui"
)

var weekLog = filepath.Join("testdata", "week.log")

type cliGolden struct {
	out  []byte
	name string
}

func (g cliGolden) Output() ([]byte, string) {
	return g.out, g.name
}

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "officehours-app")
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	os.Setenv("OFFICEHOURS_LOCKLOG_TIMEZONE", "UTC")
	os.Setenv(envNoColor, "1")
	xdg.Reload()

	config.Stdin = strings.NewReader("")

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

// run executes the app with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	stdout := config.Stdout
	config.Stdout = &buf

	t.Cleanup(func() {
		config.Stdout = stdout
	})

	err := Get().Run(append([]string{"officehours"}, args...))

	return buf.String(), err
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := run(t, "analyze", "--json", "--now", "2017-01-18T13:00:00Z", weekLog)
	require.NoError(t, err)

	testutil.CompareGoldenFile(t, cliGolden{out: []byte(out), name: "analyze_json"})
}

func TestAnalyzeTable(t *testing.T) {
	out, err := run(t, "--no-color", "analyze", "--now", "2017-01-18T13:00:00Z", weekLog)
	require.NoError(t, err)

	for _, want := range []string{"WORKING", "06:30", "07:00", "running", "TOTAL", "17:30"} {
		assert.Contains(t, out, want)
	}
}

func TestAnalyzeMultipleFiles(t *testing.T) {
	out, err := run(
		t,
		"analyze",
		"--json",
		"--now",
		"2017-01-18T13:00:00Z",
		weekLog,
		weekLog,
	)
	require.NoError(t, err)

	assert.Equal(t, 6, strings.Count(out, `"start"`))
}

func TestAnalyzeRejectsMalformedLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.log")
	require.NoError(t, os.WriteFile(path, []byte("2017/01/16-08:00 Lock\n"), 0o600))

	_, err := run(t, "analyze", path)
	require.Error(t, err)

	var pe *locklog.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
}

func TestLogAppendsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.log")

	_, err := run(t, "log", "--file", path, "--at", "2017-01-18T08:00:00Z", "start")
	require.NoError(t, err)

	_, err = run(t, "log", "--file", path, "--at", "2017-01-18T12:00:00Z", "Lock")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(
		t,
		"Start 2017-01-18 08:00:00.000000\nLock 2017-01-18 12:00:00.000000\n",
		string(b),
	)
}

func TestLogWritesInLockLogTimezone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.log")

	_, err := run(t, "log", "--file", path, "--at", "2017-01-18T08:00:00+02:00", "start")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Start 2017-01-18 06:00:00.000000\n", string(b))
}

func TestLogErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.log")

	_, err := run(t, "log", "--file", path)
	require.ErrorIs(t, err, errMissingKind)

	_, err = run(t, "log", "--file", path, "pause")
	require.Error(t, err)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcherLatest(t *testing.T) {
	w := &watcher{
		clock:      clock.NewMock(time.Date(2017, time.January, 18, 13, 0, 0, 0, time.UTC)),
		path:       weekLog,
		timeFormat: "Jan 02, 2006 15:04",
		opts:       locklog.Options{Location: time.UTC},
		interval:   time.Minute,
	}

	rep, err := w.latest()
	require.NoError(t, err)

	assert.True(t, rep.Running)
	assert.Equal(t, session.StateResting, rep.State)
	assert.Equal(t, 4*time.Hour, rep.Working)
	assert.Equal(t, time.Hour, rep.Resting)
}

func TestWatcherLatestEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.log")
	require.NoError(t, os.WriteFile(path, []byte("# nothing yet\n"), 0o600))

	w := &watcher{
		clock: clock.System{},
		path:  path,
		opts:  locklog.Options{Location: time.UTC},
	}

	_, err := w.latest()
	assert.ErrorIs(t, err, errNoSessions)
}

func TestStatusLine(t *testing.T) {
	ui.DisableStyling()

	start := time.Date(2017, time.January, 17, 8, 0, 0, 0, time.UTC)

	s := session.New(start)
	s.Apply(session.Lock(start.Add(5 * time.Hour)))
	s.Apply(session.Unlock(start.Add(6 * time.Hour)))
	s.Apply(session.Close(start.Add(8 * time.Hour)))

	got := statusLine(s.Report(clock.System{}), "Jan 02, 2006 15:04")

	assert.Equal(
		t,
		"Jan 17, 2017 08:00  closed  working 07:00  resting 01:00  total 08:00",
		got,
	)
}
