// Package osutil holds operating system specific constants and helpers.
package osutil

import (
	"os"
	"runtime"
)

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const DirPermission = 0o755

// Exit terminates the process with code.
func Exit(code exitCode) {
	os.Exit(int(code))
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// Editor returns the user's preferred text editor.
func Editor() string {
	defaultEditor := "nano"

	if runtime.GOOS == Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	return firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)
}
