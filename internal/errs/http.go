package errs

import (
	"errors"
	"strings"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/model"
)

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// It is designed to be serialized directly to JSON.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), logs only.
//   - Message: human-friendly message, sent as "error".
//   - Detail: optional extra context, sent as "detail" when non-empty.
//   - Status: HTTP status code.
type HTTPError struct {
	Code    string `json:"-"`
	Message string `json:"error"`
	Detail  string `json:"detail,omitempty"`
	Status  int    `json:"-"`

	// cause is the underlying error, kept for logs and errors.Unwrap.
	cause error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// Printing/logging the error shows the message, plus the detail when set.
func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is also an *HTTPError.
//
// It does NOT compare Code/Status; use errors.As to inspect those.
func (e *HTTPError) Is(target error) bool {
	var t *HTTPError
	return errors.As(target, &t)
}

// Body returns the JSON body for this error.
func (e *HTTPError) Body() model.Response {
	return model.Response{
		OK:     false,
		Error:  e.Message,
		Detail: e.Detail,
	}
}

// WithDetail returns a *copy* of this HTTPError with Detail replaced.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Detail:  detail,
		Status:  e.Status,
		cause:   e.cause,
	}
}

// WithCause returns a *copy* of this HTTPError wrapping err.
func (e *HTTPError) WithCause(err error) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Detail:  e.Detail,
		Status:  e.Status,
		cause:   err,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
