package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/chanseok/rememberme/core/handler"
)

var supportedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

// shared holds settings common to a router and every group and sub-router derived from it.
type shared[C handler.Context] struct {
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
}

// mux is the Router implementation. Routing itself is delegated to chi.
type mux[C handler.Context] struct {
	r           chi.Router
	middlewares []handler.Middleware[C]
	shared      *shared[C]
	routed      bool
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		r: chi.NewRouter(),
		shared: &shared[C]{
			errorHandler: defaultErrorHandler[C],
			logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.shared.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		m.shared.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			return any(NewContext(w, r, params)).(C)
		}
	}

	m.installFallbacks()
	return m
}

// installFallbacks routes chi's not-found and method-not-allowed cases through the error handler.
func (m *mux[C]) installFallbacks() {
	s := m.shared
	m.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, ErrNotFound)
	})
	m.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, ErrMethodNotAllowed)
	})
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.r.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodOptions, pattern, h)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle("", pattern, h)
}

func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !slices.Contains(supportedMethods, method) {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.routed {
		panic(ErrRoutesDefined)
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		r:           m.r,
		middlewares: append(slices.Clone(m.middlewares), middlewares...),
		shared:      m.shared,
	}
}

func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

func (m *mux[C]) Route(pattern string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilSubrouter, pattern))
	}
	validatePattern(pattern)
	m.routed = true

	var sub *mux[C]
	m.r.Route(pattern, func(cr chi.Router) {
		sub = &mux[C]{
			r:           cr,
			middlewares: slices.Clone(m.middlewares),
			shared:      m.shared,
		}
		sub.installFallbacks()
		fn(sub)
	})
	return sub
}

func (m *mux[C]) Routes() []Route {
	var routes []Route
	_ = chi.Walk(m.r, func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, Route{Method: method, Pattern: pattern})
		return nil
	})
	return routes
}

// handle registers h for method; an empty method matches all.
// Middleware is composed here, so later Use calls do not affect this route.
func (m *mux[C]) handle(method, pattern string, h handler.HandlerFunc[C]) {
	validatePattern(pattern)
	m.routed = true

	if len(m.middlewares) > 0 {
		h = chain(slices.Clone(m.middlewares), h)
	}
	s := m.shared
	fn := func(w http.ResponseWriter, r *http.Request) {
		s.serve(w, r, h)
	}

	if method == "" {
		m.r.HandleFunc(pattern, fn)
		return
	}
	m.r.MethodFunc(method, pattern, fn)
}

func validatePattern(pattern string) {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}
}

func (s *shared[C]) serve(w http.ResponseWriter, r *http.Request, h handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)
	ctx := s.newContext(ww, r, urlParams(r))

	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				s.logger.Error("panic after response written",
					"value", perr.value,
					"stack", string(perr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			s.errorHandler(ctx, perr)
		}
	}()

	response := h(ctx)
	if response == nil {
		s.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, ctx.Request()); err != nil {
		s.errorHandler(ctx, err)
	}
}

func (s *shared[C]) fail(w http.ResponseWriter, r *http.Request, err error) {
	ww := newResponseWriter(w)
	s.errorHandler(s.newContext(ww, r, nil), err)
}

func urlParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || len(rctx.URLParams.Keys) == 0 {
		return nil
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			params[key] = rctx.URLParams.Values[i]
		}
	}
	return params
}
