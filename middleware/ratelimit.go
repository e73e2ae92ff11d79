package middleware

import (
	"net/http"
	"strconv"

	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/pkg/ratelimiter"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	Skip    func(ctx handler.Context) bool
	Limiter *ratelimiter.Limiter
	// KeyExtractor picks the bucket (default: client IP).
	KeyExtractor func(ctx handler.Context) string
	// ErrorHandler renders denied requests (default: 429 with retry_after in details).
	ErrorHandler func(ctx handler.Context, result *ratelimiter.Result) handler.Response
	// StoreErrorHandler renders limiter failures. When it is nil or returns nil
	// the request goes through.
	StoreErrorHandler func(ctx handler.Context, err error) handler.Response
	// SetHeaders adds X-RateLimit-* headers and Retry-After.
	SetHeaders bool
}

// RateLimit rejects requests once the bucket for their key is empty.
// Panics if no limiter is provided.
func RateLimit[C handler.Context](cfg RateLimitConfig) handler.Middleware[C] {
	if cfg.Limiter == nil {
		panic("ratelimit middleware: limiter is required")
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = clientAddr
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ handler.Context, result *ratelimiter.Result) handler.Response {
			return response.Error(response.ErrTooManyRequests.WithDetails(map[string]any{
				"retry_after": int64(result.RetryAfter().Seconds()),
			}))
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			result, err := cfg.Limiter.Allow(ctx, cfg.KeyExtractor(ctx))
			if err != nil {
				if cfg.StoreErrorHandler != nil {
					if resp := cfg.StoreErrorHandler(ctx, err); resp != nil {
						return resp
					}
				}
				return next(ctx)
			}

			var resp handler.Response
			if result.Allowed() {
				resp = next(ctx)
			} else {
				resp = cfg.ErrorHandler(ctx, result)
			}
			if !cfg.SetHeaders || resp == nil {
				return resp
			}
			return withRateLimitHeaders(resp, result)
		}
	}
}

func withRateLimitHeaders(resp handler.Response, result *ratelimiter.Result) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
		if !result.Allowed() {
			h.Set("Retry-After", strconv.FormatInt(int64(result.RetryAfter().Seconds()), 10))
		}
		return resp(w, r)
	}
}
