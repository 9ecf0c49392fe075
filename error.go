package shopgrep

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic: they describe the class of failure, not
// the failing component. EINTERNAL covers programmer errors and broken
// invariants; EUNAVAILABLE covers external collaborators (model runtime,
// network) that could not be reached or did not answer in time.
const (
	ECONFLICT    = "conflict"
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the constants above.
	Code string

	// Message is safe to show to an end user.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("shopgrep error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps err and returns its code, if available.
// Non-application errors map to EINTERNAL; nil returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message, if available.
// Non-application errors report a generic message so internal details
// never leak to users.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an Error with formatting support.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
