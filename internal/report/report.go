// Package report turns session reports into the shapes shown to users: JSON
// documents for the API and --json output, and table rows for the terminal.
package report

import (
	"strconv"
	"time"

	"github.com/officehours/officehours/internal/session"
	"github.com/officehours/officehours/internal/timeutil"
)

// Summary is the serialised form of a session report.
type Summary struct {
	ID             string     `json:"id,omitempty"`
	Start          time.Time  `json:"start"`
	End            *time.Time `json:"end,omitempty"`
	State          string     `json:"state"`
	Running        bool       `json:"running"`
	Total          string     `json:"total"`
	Working        string     `json:"working"`
	Resting        string     `json:"resting"`
	TotalSeconds   int64      `json:"total_seconds"`
	WorkingSeconds int64      `json:"working_seconds"`
	RestingSeconds int64      `json:"resting_seconds"`
}

// New builds the summary of rep. id may be empty.
func New(id string, rep session.Report) Summary {
	s := Summary{
		ID:             id,
		Start:          rep.Start,
		State:          rep.State.String(),
		Running:        rep.Running,
		Total:          rep.Total.String(),
		Working:        rep.Working.String(),
		Resting:        rep.Resting.String(),
		TotalSeconds:   seconds(rep.Total),
		WorkingSeconds: seconds(rep.Working),
		RestingSeconds: seconds(rep.Resting),
	}

	if !rep.Running {
		end := rep.End
		s.End = &end
	}

	return s
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

// Header is the table header matching Row.
var Header = []string{"#", "DAY", "STARTED", "ENDED", "WORKING", "RESTING", "TOTAL"}

// Row renders rep as a table row. timeFormat is used for the start and end
// columns; running sessions show "running" as their end.
func Row(n int, rep session.Report, timeFormat string) []string {
	end := "running"
	if !rep.Running {
		end = rep.End.Format(timeFormat)
	}

	return []string{
		strconv.Itoa(n),
		rep.Start.Format("Mon"),
		rep.Start.Format(timeFormat),
		end,
		timeutil.FormatClock(rep.Working),
		timeutil.FormatClock(rep.Resting),
		timeutil.FormatClock(rep.Total),
	}
}

// TotalsRow renders the sum of several reports beneath the rows printed by
// Row.
func TotalsRow(sum session.Report) []string {
	return []string{
		"",
		"",
		"",
		"TOTAL",
		timeutil.FormatClock(sum.Working),
		timeutil.FormatClock(sum.Resting),
		timeutil.FormatClock(sum.Total),
	}
}
