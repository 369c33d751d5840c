package registry

import "github.com/officehours/officehours/internal/apperr"

var errSessionNotFound = &apperr.Error{
	Message: "session not found: %s",
	Code:    apperr.CodeNotFound,
}

// ErrSessionNotFound is returned for identifiers the registry does not hold.
var ErrSessionNotFound error = errSessionNotFound
