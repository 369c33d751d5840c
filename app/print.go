package app

import (
	"io"

	"github.com/officehours/officehours/internal/report"
	"github.com/officehours/officehours/internal/session"
	"github.com/officehours/officehours/internal/ui"
)

const (
	noSessionsMsg = "No sessions found in the lock log"
)

// printReports prints one table row per session followed by a totals row.
func printReports(w io.Writer, reports []session.Report, timeFormat string) {
	tableBody := make([][]string, 0, len(reports)+2)
	tableBody = append(tableBody, report.Header)

	var sum session.Report

	for i := range reports {
		rep := reports[i]

		row := report.Row(i+1, rep, timeFormat)
		if rep.Running {
			row[3] = ui.Green(row[3])
		}

		tableBody = append(tableBody, row)

		sum.Total += rep.Total
		sum.Working += rep.Working
		sum.Resting += rep.Resting
	}

	if len(reports) > 1 {
		tableBody = append(tableBody, report.TotalsRow(sum))
	}

	ui.PrintTable(tableBody, w)
}
