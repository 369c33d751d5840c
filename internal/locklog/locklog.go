// Package locklog reads and writes screen-lock logs: plain text files with
// one session event per line, as produced by a desktop lock watcher.
//
// Two line shapes are understood:
//
//	2017/01/17-08:00 Start
//	Start 2017-01-17 08:00:00.123456
//
// Recognised kinds are Start (or Create), Lock, Unlock and Stop (or Close).
// Blank lines and lines starting with '#' are ignored.
package locklog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/officehours/officehours/internal/session"
	"github.com/officehours/officehours/internal/timeutil"
)

// LineLayout is the timestamp layout used by Append.
const LineLayout = "2006-01-02 15:04:05.000000"

// DefaultLayouts are tried, in order, before falling back to free-form date
// parsing.
var DefaultLayouts = []string{
	"2006/01/02-15:04",
	"2006/01/02-15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	time.RFC3339Nano,
}

var kindAliases = map[string]session.Kind{
	"start":  session.KindCreate,
	"create": session.KindCreate,
	"lock":   session.KindLock,
	"unlock": session.KindUnlock,
	"stop":   session.KindClose,
	"close":  session.KindClose,
}

var kindLabels = map[session.Kind]string{
	session.KindCreate: "Start",
	session.KindLock:   "Lock",
	session.KindUnlock: "Unlock",
	session.KindClose:  "Stop",
}

// Options controls how timestamps are interpreted.
type Options struct {
	// Location is used for layouts without a zone. Defaults to time.Local.
	Location *time.Location
	// Now anchors relative dates handed to the free-form parser.
	Now time.Time
	// Layouts overrides DefaultLayouts when non-empty.
	Layouts []string
}

func (o Options) layouts() []string {
	if len(o.Layouts) > 0 {
		return o.Layouts
	}

	return DefaultLayouts
}

func (o Options) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}

	return time.Local
}

// ParseKind resolves a lock log label such as "Start" or "stop" to an event
// kind.
func ParseKind(s string) (session.Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, errUnknownKind.Fmt(s)
	}

	return k, nil
}

// Entry is one parsed line.
type Entry struct {
	Event session.Event
	Line  int
}

// Parse reads every event in r.
func Parse(r io.Reader, opts Options) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)

	var n int

	for scanner.Scan() {
		n++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		e, err := parseLine(text, opts)
		if err != nil {
			return nil, &ParseError{Line: n, Text: text, Err: err}
		}

		entries = append(entries, Entry{Line: n, Event: e})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func parseLine(text string, opts Options) (session.Event, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return session.Event{}, errMalformedLine
	}

	var (
		kind  session.Kind
		stamp string
	)

	if k, ok := kindAliases[strings.ToLower(fields[0])]; ok {
		kind = k
		stamp = strings.Join(fields[1:], " ")
	} else if k, ok := kindAliases[strings.ToLower(fields[len(fields)-1])]; ok {
		kind = k
		stamp = strings.Join(fields[:len(fields)-1], " ")
	} else {
		return session.Event{}, errUnknownKind.Fmt(text)
	}

	t, err := parseTime(stamp, opts)
	if err != nil {
		return session.Event{}, err
	}

	return session.Event{Kind: kind, Time: t}, nil
}

func parseTime(stamp string, opts Options) (time.Time, error) {
	loc := opts.location()

	for _, layout := range opts.layouts() {
		if t, err := time.ParseInLocation(layout, stamp, loc); err == nil {
			return t, nil
		}
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now().In(loc)
	}

	t, err := timeutil.FromStrStrict(stamp, now)
	if err != nil {
		return time.Time{}, errBadTimestamp.Fmt(stamp).Wrap(err)
	}

	return t, nil
}

// Replay turns parsed entries into sessions. Every Start opens a new session.
// A session still open when the next Start arrives is closed at the time of
// its last recorded event, since the watcher that produced it was restarted
// without logging a Stop.
func Replay(entries []Entry) ([]*session.Session, error) {
	var (
		sessions []*session.Session
		current  *session.Session
	)

	for _, entry := range entries {
		e := entry.Event

		if e.Kind == session.KindCreate {
			if current != nil && current.Running() {
				current.Apply(session.Close(current.Last().Time))
			}

			current = session.New(e.Time)
			sessions = append(sessions, current)

			continue
		}

		if current == nil {
			return nil, &ParseError{
				Line: entry.Line,
				Err:  errNoStart.Fmt(kindLabels[e.Kind]),
			}
		}

		current.Apply(e)
	}

	return sessions, nil
}

// Load parses and replays the lock log at path.
func Load(path string, opts Options) ([]*session.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errOpenLog.Wrap(err)
	}

	defer f.Close()

	entries, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return Replay(entries)
}

// Append writes e to w as a single line in the watcher's format. The line
// carries no zone, so the time is written in opts' location, the one Parse
// reads it back in.
func Append(w io.Writer, e session.Event, opts Options) error {
	label, ok := kindLabels[e.Kind]
	if !ok {
		return errUnknownKind.Fmt(e.Kind.String())
	}

	_, err := fmt.Fprintf(w, "%s %s\n", label, e.Time.In(opts.location()).Format(LineLayout))

	return err
}

// AppendFile appends e to the lock log at path, creating it if needed.
func AppendFile(path string, e session.Event, opts Options) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errOpenLog.Wrap(err)
	}

	if err := Append(f, e, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
