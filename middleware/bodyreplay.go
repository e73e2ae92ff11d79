package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/pkg/bodyreplay"
)

// DefaultMaxBodySize is the request body cap used when BodyReplayConfig.MaxBodySize is zero.
const DefaultMaxBodySize int64 = 1 << 20

type replayContextKey struct{}

// BodyReplayConfig configures the body replay middleware.
type BodyReplayConfig struct {
	Skip func(ctx handler.Context) bool
	// MaxBodySize rejects larger bodies with 413 (default: 1MiB).
	MaxBodySize int64
	// OnResponse runs after the handler wrote its response and before it is sent.
	OnResponse func(ctx handler.Context, req *bodyreplay.Request, resp *bodyreplay.Response)
	// ErrorHandler renders body read failures (default: 413, 415 or 400 JSON errors).
	ErrorHandler func(ctx handler.Context, err error) handler.Response
}

// BodyReplay buffers request and response bodies with the default configuration.
func BodyReplay[C handler.Context]() handler.Middleware[C] {
	return BodyReplayWithConfig[C](BodyReplayConfig{})
}

// BodyReplayWithConfig reads the request body once so every later reader sees all of it,
// and buffers the response until the handler is done.
//
// The request's Body is replaced with a replay reader and the wrapper is stored in the
// context for GetReplayRequest. The response is written to a bodyreplay.Response and
// committed after OnResponse. If the handler's response fails, the buffer is dropped and
// the error goes to the router's error handler.
func BodyReplayWithConfig[C handler.Context](cfg BodyReplayConfig) handler.Middleware[C] {
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = defaultBodyErrorHandler(cfg.MaxBodySize)
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			if cfg.MaxBodySize > 0 && req.ContentLength > cfg.MaxBodySize {
				return cfg.ErrorHandler(ctx, fmt.Errorf("%w: content length %d", bodyreplay.ErrBodyTooLarge, req.ContentLength))
			}

			rr, err := bodyreplay.NewRequest(req, bodyreplay.WithMaxBodySize(cfg.MaxBodySize))
			if err != nil {
				return cfg.ErrorHandler(ctx, err)
			}
			attachReplay(req, rr)
			ctx.SetValue(replayContextKey{}, rr)

			resp := next(ctx)
			if resp == nil {
				return nil
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				rw := bodyreplay.NewResponse(w)
				if err := resp(rw, r); err != nil {
					return err
				}
				if cfg.OnResponse != nil {
					cfg.OnResponse(ctx, rr, rw)
				}
				return rw.Commit()
			}
		}
	}
}

// GetReplayRequest returns the wrapper stored by BodyReplay.
func GetReplayRequest(ctx context.Context) (*bodyreplay.Request, bool) {
	rr, ok := ctx.Value(replayContextKey{}).(*bodyreplay.Request)
	return rr, ok
}

// attachReplay points r's body at the cached bytes.
func attachReplay(r *http.Request, rr *bodyreplay.Request) {
	r.Body = rr.Body()
	r.ContentLength = int64(rr.Len())
	r.GetBody = func() (io.ReadCloser, error) {
		return rr.Body(), nil
	}
}

func defaultBodyErrorHandler(limit int64) func(handler.Context, error) handler.Response {
	return func(_ handler.Context, err error) handler.Response {
		switch {
		case errors.Is(err, bodyreplay.ErrBodyTooLarge):
			return response.Error(response.ErrRequestEntityTooLarge.
				WithMessage(fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", limit)).
				WithDetails(map[string]any{"limit": limit}))
		case errors.Is(err, bodyreplay.ErrUnsupportedCharset):
			return response.Error(response.ErrUnsupportedMediaType.WithError(err))
		default:
			return response.Error(response.ErrBadRequest.WithMessage("Failed to read request body"))
		}
	}
}
