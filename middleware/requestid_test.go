package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/core/router"
	"github.com/chanseok/rememberme/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	r := newRouter(middleware.RequestID[*router.Context]())
	r.Get("/", func(ctx *router.Context) handler.Response {
		seen, _ = middleware.GetRequestID(ctx)
		return response.String("ok")
	})

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	header := w.Header().Get("X-Request-ID")
	assert.Equal(t, seen, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)

	w2 := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, header, w2.Header().Get("X-Request-ID"))
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Parallel()

	r := newRouter(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
		HeaderName:  "X-Trace",
		UseExisting: true,
		Generator:   func() string { return "generated" },
		Skip: func(ctx handler.Context) bool {
			return ctx.Request().URL.Path == "/live"
		},
	}))
	r.Get("/", func(ctx *router.Context) handler.Response { return response.String("ok") })
	r.Get("/live", func(ctx *router.Context) handler.Response {
		_, ok := middleware.GetRequestID(ctx)
		assert.False(t, ok)
		return response.String("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace", "incoming")
	assert.Equal(t, "incoming", do(r, req).Header().Get("X-Trace"))

	assert.Equal(t, "generated", do(r, httptest.NewRequest(http.MethodGet, "/", nil)).Header().Get("X-Trace"))
	assert.Empty(t, do(r, httptest.NewRequest(http.MethodGet, "/live", nil)).Header().Get("X-Trace"))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	_, ok := middleware.RequestIDExtractor(context.Background())
	assert.False(t, ok)

	var attrKey, attrValue string
	r := newRouter(middleware.RequestID[*router.Context]())
	r.Get("/", func(ctx *router.Context) handler.Response {
		attr, ok := middleware.RequestIDExtractor(ctx)
		require.True(t, ok)
		attrKey, attrValue = attr.Key, attr.Value.String()
		return response.NoContent()
	})

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "request_id", attrKey)
	assert.Equal(t, w.Header().Get("X-Request-ID"), attrValue)
}
