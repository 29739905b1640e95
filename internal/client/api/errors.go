package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers every failure where no usable response arrived:
	// transport errors, timeouts, and bodies that cannot be decoded.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks credential rejections (HTTP 401/403). The session
	// manager reacts to it by dropping all local trust state.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports input rejected locally, before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RequestError reports a non-2xx response that was not a credential
// rejection, or a business-level failure carried in a success:false
// envelope. Message is the best-effort human-readable explanation taken
// from the response body, falling back to the HTTP status line.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}
