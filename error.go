package pagebrief

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID        = "invalid"
	EUNAUTHORIZED   = "unauthorized"
	EFETCH          = "fetch"
	EUNSUPPORTED    = "unsupported_content_type"
	EINSUFFICIENT   = "insufficient_content"
	ESUMMARYTIMEOUT = "summarization_timeout"
	ESUMMARY        = "summarization_failure"
	EINTERNAL       = "internal"
)

// Error represents an application-specific error. Every pipeline stage
// reports failure through this type so the kind survives stage boundaries.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string

	// Status is the HTTP status returned by the fetch target, if any.
	Status int

	// Timeout is set when the failure was caused by a deadline.
	Timeout bool
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("pagebrief error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorStatus returns the upstream HTTP status carried by an application
// error, or zero when no response was received.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// IsTimeout reports whether err is an application error caused by a deadline.
func IsTimeout(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Timeout
	}
	return false
}
