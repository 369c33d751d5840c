// Package apperr provides the error type used across officehours. Errors are
// declared once as catalogue values and derived with Fmt or Wrap so that
// callers can match them with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an error for the outer surfaces (HTTP status, exit code).
type Code int

const (
	CodeInternal Code = iota
	CodeInvalid
	CodeNotFound
)

// Error is an application error.
type Error struct {
	Cause   error
	base    *Error
	Message string
	Code    Code
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the catalogue entry e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || t == e.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Fmt formats the error message with the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Code:    e.Code,
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap attaches err as the cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Code:    e.Code,
		Cause:   err,
		base:    e.root(),
	}
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeInternal.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}
