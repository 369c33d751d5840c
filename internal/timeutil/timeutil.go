// Package timeutil provides utility functions for parsing and presenting
// times and durations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/officehours/officehours/internal/apperr"
)

const minutesInAnHour = 60

var errParseTime = &apperr.Error{
	Message: "unable to parse time %q",
	Code:    apperr.CodeInvalid,
}

// ErrParseTime is returned by FromStr when the input is not a recognisable
// date.
var ErrParseTime error = errParseTime

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatClock renders d as HH:MM, truncating seconds. Negative durations get
// a leading minus sign.
func FormatClock(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	hrs, mins := MinsToHoursAndMins(int(d / time.Minute))

	return fmt.Sprintf("%s%02d:%02d", sign, hrs, mins)
}

// FromStr parses a user supplied time. RFC 3339 timestamps are tried first;
// anything else ("2017-01-17 08:00", "20 mins ago", "yesterday at 9am") is
// handed to dateparser and resolved relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	return fromStr(s, now, false)
}

// FromStrStrict is FromStr for recorded timestamps: dateparser must find a
// day, month and year, so fragments such as "13" are rejected instead of
// being completed from now.
func FromStrStrict(s string, now time.Time) (time.Time, error) {
	return fromStr(s, now, true)
}

func fromStr(s string, now time.Time, strict bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errParseTime.Fmt(s)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
		StrictParsing:   strict,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParseTime.Fmt(s).Wrap(err)
	}

	if dt.Time.IsZero() {
		return time.Time{}, errParseTime.Fmt(s)
	}

	return dt.Time, nil
}
