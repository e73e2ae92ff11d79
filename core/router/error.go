package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chanseok/rememberme/core/handler"
)

var (
	ErrNoContextFactory       = errors.New("no context factory provided")
	ErrMethodNotAllowed error = statusError{status: http.StatusMethodNotAllowed, msg: "method not allowed"}
	ErrNotFound         error = statusError{status: http.StatusNotFound, msg: "not found"}
	ErrNilResponse            = errors.New("nil response")
	ErrInvalidMethod          = errors.New("invalid http method")
	ErrNilSubrouter           = errors.New("nil subrouter")
	ErrInvalidPattern         = errors.New("invalid route path pattern")
	ErrRoutesDefined          = errors.New("all middlewares must be defined before routes")
)

// statusError is a routing error that maps to a fixed HTTP status.
type statusError struct {
	status int
	msg    string
}

func (e statusError) Error() string   { return e.msg }
func (e statusError) StatusCode() int { return e.status }

// statusCode lets errors choose their HTTP status.
type statusCode interface {
	StatusCode() int
}

func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if Written(w) {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	http.Error(w, http.StatusText(status), status)
}

// PanicError is passed to the error handler when a handler panics.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to see through panics raised with an error value.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
