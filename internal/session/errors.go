package session

import "github.com/officehours/officehours/internal/apperr"

var errUnknownKind = &apperr.Error{
	Message: "unknown event kind: %q",
	Code:    apperr.CodeInvalid,
}

// ErrUnknownKind is returned by ParseKind for names it does not recognise.
var ErrUnknownKind error = errUnknownKind
