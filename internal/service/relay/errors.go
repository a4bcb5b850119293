package relay

import (
	"errors"
	"fmt"
)

// ErrorCode classifies relay failures for the HTTP boundary.
type ErrorCode string

const (
	ErrorInvalidRequest ErrorCode = "invalid_request"
	ErrorConfiguration  ErrorCode = "configuration"
	ErrorRateLimited    ErrorCode = "rate_limited"
	ErrorQuotaExhausted ErrorCode = "quota_exhausted"
	ErrorUpstream       ErrorCode = "upstream"
)

// Error is the typed failure returned by the relay service. Reason is safe to
// surface to callers; Err carries the underlying cause.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("relay: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("relay: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a typed relay error.
func NewError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// CodeOf extracts the relay error code, ok=false for untyped errors.
func CodeOf(err error) (ErrorCode, bool) {
	var relayErr *Error
	if !errors.As(err, &relayErr) {
		return "", false
	}
	return relayErr.Code, true
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

func upstreamStatusCode(err error) (int, bool) {
	var statusErr httpStatusCoder
	if !errors.As(err, &statusErr) {
		return 0, false
	}
	return statusErr.HTTPStatusCode(), true
}
