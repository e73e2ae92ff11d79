package middleware_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/core/router"
	"github.com/chanseok/rememberme/pkg/jwt"
)

var testKey = bytes.Repeat([]byte("s"), 64)

type mw = handler.Middleware[*router.Context]

func newRouter(middlewares ...mw) router.Router[*router.Context] {
	r := router.New[*router.Context](router.WithErrorHandler(response.JSONErrorHandler[*router.Context]))
	r.Use(middlewares...)
	return r
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func newTokenService(t *testing.T, now func() time.Time) *jwt.Service {
	t.Helper()
	svc, err := jwt.New(testKey, time.Hour, jwt.WithClock(now))
	require.NoError(t, err)
	return svc
}

// echoBody writes back whatever the handler reads from the request body.
func echoBody(ctx *router.Context) handler.Response {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return response.Error(err)
	}
	return response.String(string(body))
}
