package response

import (
	"maps"
	"net/http"
)

// HTTPError is an error with an HTTP status and a JSON body.
//
// It renders as {"code", "message", "details"}; Status only sets the HTTP status line.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// Is matches any HTTPError with the same status and code, so customized copies
// still compare equal to the package errors.
func (e HTTPError) Is(target error) bool {
	t, ok := target.(HTTPError)
	return ok && t.Status == e.Status && t.Code == e.Code
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns a copy of the error with an error cause.
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	maps.Copy(details, e.Details)
	details["cause"] = err.Error()
	e.Details = details
	return e
}

func statusError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}

// Errors the API answers with. Customize a copy with WithMessage, WithDetails or WithError.
var (
	ErrBadRequest            = statusError(http.StatusBadRequest, "bad_request")
	ErrUnauthorized          = statusError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound              = statusError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed      = statusError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrConflict              = statusError(http.StatusConflict, "conflict")
	ErrRequestEntityTooLarge = statusError(http.StatusRequestEntityTooLarge, "request_entity_too_large")
	ErrUnsupportedMediaType  = statusError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrTooManyRequests       = statusError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternalServerError   = statusError(http.StatusInternalServerError, "internal_server_error")
	ErrServiceUnavailable    = statusError(http.StatusServiceUnavailable, "service_unavailable")
)

// httpErrorsByStatus maps the status of errors that are not HTTPError values.
var httpErrorsByStatus = func() map[int]HTTPError {
	m := make(map[int]HTTPError)
	for _, e := range []HTTPError{
		ErrBadRequest, ErrUnauthorized, ErrNotFound, ErrMethodNotAllowed, ErrConflict,
		ErrRequestEntityTooLarge, ErrUnsupportedMediaType, ErrTooManyRequests,
		ErrInternalServerError, ErrServiceUnavailable,
	} {
		m[e.Status] = e
	}
	return m
}()
