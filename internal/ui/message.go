package ui

import (
	"github.com/pterm/pterm"

	"github.com/officehours/officehours/internal/osutil"
)

// DisableStyling disables all styling provided by pterm.
func DisableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// StyleErrors sets up the prefix used for error messages.
func StyleErrors() {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a failure code.
func Quit(err error) {
	Error(err)
	osutil.Exit(osutil.ExitError)
}
