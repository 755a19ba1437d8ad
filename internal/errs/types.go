package errs

import (
	"net/http"
)

// Messages sent to clients. They are part of the public contract of the
// endpoint, so change them with care.
const (
	MessageMissingName    = "Missing name"
	MessageInvalidEmail   = "Invalid email format"
	MessageMissingAPIKey  = "Missing RESEND_API_KEY"
	MessageProviderError  = "Resend error"
	MessageServerError    = "Server error"
	CodeMissingAPIKey     = "MISSING_API_KEY"
	CodeProviderRejection = "PROVIDER_ERROR"
)

func codeFor(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Used for client input problems (missing name, malformed email).
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusBadRequest),
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewConfigError creates a 500 for a missing or broken deployment setting.
// No detail is attached; the message names the setting.
func NewConfigError(message string) *HTTPError {
	return &HTTPError{
		Code:    CodeMissingAPIKey,
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}

// NewBadGatewayError creates a 502 carrying the upstream response verbatim.
func NewBadGatewayError(detail string) *HTTPError {
	return &HTTPError{
		Code:    CodeProviderRejection,
		Message: MessageProviderError,
		Detail:  detail,
		Status:  http.StatusBadGateway,
	}
}

// NewServerError creates the generic 500 for unexpected failures.
//
// The stringified error is exposed as detail.
func NewServerError(err error) *HTTPError {
	e := &HTTPError{
		Code:    codeFor(http.StatusInternalServerError),
		Message: MessageServerError,
		Status:  http.StatusInternalServerError,
		cause:   err,
	}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// NewInternalServerError creates a 500 with the generic status text and no detail.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusMethodNotAllowed),
		Message: http.StatusText(http.StatusMethodNotAllowed),
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    codeFor(http.StatusNotFound),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// FromStatus builds an HTTPError for an arbitrary status using its status text.
func FromStatus(status int) *HTTPError {
	return &HTTPError{
		Code:    codeFor(status),
		Message: http.StatusText(status),
		Status:  status,
	}
}
