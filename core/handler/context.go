package handler

import (
	"context"
	"net/http"
)

// Context is the request context passed to handlers and middleware.
// router.Context is the default implementation; applications embed it to add helpers.
type Context interface {
	context.Context
	// Request returns the current request. SetValue replaces it with a derived request.
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Param returns a path parameter, or "" when the route has none with that name.
	Param(key string) string
	// SetValue stores a request-scoped value readable through Value.
	SetValue(key, val any)
}
