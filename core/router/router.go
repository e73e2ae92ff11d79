package router

import (
	"net/http"

	"github.com/chanseok/rememberme/core/handler"
)

// Router registers typed handlers and serves them over net/http.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Options(pattern string, h handler.HandlerFunc[C])

	// Handle registers h for every method.
	Handle(pattern string, h handler.HandlerFunc[C])
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	Use(middlewares ...handler.Middleware[C])
	With(middlewares ...handler.Middleware[C]) Router[C]

	// Group shares the path prefix of its parent and adds its own middleware.
	Group(fn func(r Router[C])) Router[C]
	// Route creates a sub-router under pattern.
	Route(pattern string, fn func(r Router[C])) Router[C]
}

// Routes provides route introspection.
type Routes interface {
	Routes() []Route
}

// Route describes a registered method and pattern.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router. Without WithContextFactory only *Context is supported.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
