package router_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/router"
)

type teapotError struct{}

func (teapotError) Error() string   { return "teapot" }
func (teapotError) StatusCode() int { return http.StatusTeapot }

func TestDefaultErrorHandler(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/plain", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error { return errors.New("boom") }
	})
	r.Get("/status", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error { return teapotError{} }
	})
	r.Get("/nil", func(ctx *router.Context) handler.Response { return nil })

	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodGet, "/plain").Code)
	assert.Equal(t, http.StatusTeapot, serve(r, http.MethodGet, "/status").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodGet, "/nil").Code)
}

func TestCustomErrorHandler(t *testing.T) {
	t.Parallel()

	var got []error
	r := router.New[*router.Context](router.WithErrorHandler(func(ctx *router.Context, err error) {
		got = append(got, err)
		ctx.ResponseWriter().WriteHeader(http.StatusBadGateway)
	}))
	r.Get("/nil", func(ctx *router.Context) handler.Response { return nil })

	assert.Equal(t, http.StatusBadGateway, serve(r, http.MethodGet, "/nil").Code)
	assert.Equal(t, http.StatusBadGateway, serve(r, http.MethodGet, "/missing").Code)
	assert.Equal(t, http.StatusBadGateway, serve(r, http.MethodPost, "/nil").Code)

	require.Len(t, got, 3)
	assert.ErrorIs(t, got[0], router.ErrNilResponse)
	assert.ErrorIs(t, got[1], router.ErrNotFound)
	assert.ErrorIs(t, got[2], router.ErrMethodNotAllowed)
}

func TestPanicRecovery(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("db down")
	var captured error
	r := router.New[*router.Context](router.WithErrorHandler(func(ctx *router.Context, err error) {
		captured = err
		ctx.ResponseWriter().WriteHeader(http.StatusInternalServerError)
	}))
	r.Get("/handler", func(ctx *router.Context) handler.Response { panic(sentinel) })
	r.Get("/response", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error { panic("in response") }
	})

	w := serve(r, http.MethodGet, "/handler")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var perr router.PanicError
	require.ErrorAs(t, captured, &perr)
	assert.Equal(t, sentinel, perr.Value())
	assert.NotEmpty(t, perr.Stack())
	assert.ErrorIs(t, captured, sentinel)

	serve(r, http.MethodGet, "/response")
	require.ErrorAs(t, captured, &perr)
	assert.Equal(t, "in response", perr.Value())
	assert.Equal(t, "panic: in response", captured.Error())
}

func TestErrorHandlerSkipsWrittenResponses(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/partial", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("partial"))
			return errors.New("late failure")
		}
	})
	r.Get("/panic", func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusCreated)
			panic("after write")
		}
	})

	w := serve(r, http.MethodGet, "/partial")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "partial", w.Body.String())

	w = serve(r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusCreated, w.Code)
}
