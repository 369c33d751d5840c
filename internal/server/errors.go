package server

import "github.com/officehours/officehours/internal/apperr"

var (
	errInvalidBody = &apperr.Error{
		Message: "invalid request body",
		Code:    apperr.CodeInvalid,
	}

	errCreateEvent = &apperr.Error{
		Message: "create events cannot be posted; open a session with POST /sessions",
		Code:    apperr.CodeInvalid,
	}

	errMissingKind = &apperr.Error{
		Message: "event kind is required",
		Code:    apperr.CodeInvalid,
	}
)
