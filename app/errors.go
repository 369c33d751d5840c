package app

import "github.com/officehours/officehours/internal/apperr"

var (
	errNoLockLog = &apperr.Error{
		Message: "no lock log given: pass a file or set locklog.path in the config",
		Code:    apperr.CodeInvalid,
	}

	errMissingKind = &apperr.Error{
		Message: "an event kind is required: start, lock, unlock or stop",
		Code:    apperr.CodeInvalid,
	}

	errWatchInterval = &apperr.Error{
		Message: "watch interval must be positive, got %s",
		Code:    apperr.CodeInvalid,
	}

	errNoSessions = &apperr.Error{
		Message: "no sessions found in %s",
		Code:    apperr.CodeNotFound,
	}
)
