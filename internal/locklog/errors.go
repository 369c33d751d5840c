package locklog

import (
	"fmt"

	"github.com/officehours/officehours/internal/apperr"
)

var (
	errMalformedLine = &apperr.Error{
		Message: "expected an event kind and a timestamp",
		Code:    apperr.CodeInvalid,
	}

	errUnknownKind = &apperr.Error{
		Message: "unknown event kind in %q",
		Code:    apperr.CodeInvalid,
	}

	errBadTimestamp = &apperr.Error{
		Message: "unrecognised timestamp %q",
		Code:    apperr.CodeInvalid,
	}

	errNoStart = &apperr.Error{
		Message: "%s event before any Start",
		Code:    apperr.CodeInvalid,
	}

	errOpenLog = &apperr.Error{
		Message: "unable to open lock log",
		Code:    apperr.CodeInvalid,
	}
)

// ParseError reports a problem with one line of a lock log.
type ParseError struct {
	Err  error
	Text string
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
