package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/logger"
	"github.com/chanseok/rememberme/pkg/bodyreplay"
)

const redacted = "[REDACTED]"

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	Skip func(ctx handler.Context) bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// LogLevel for successful requests (default: info). 4xx log at warn, 5xx at error.
	LogLevel slog.Level

	// LogRequestBody logs the request body read through the replay wrapper.
	LogRequestBody bool

	// LogResponseBody logs the buffered response body.
	LogResponseBody bool

	LogHeaders bool

	// MaxBodyLogSize truncates logged bodies (default: 4KB).
	MaxBodyLogSize int

	// SensitiveHeaders are logged as [REDACTED] (canonical header names).
	SensitiveHeaders []string

	// SensitiveFields are top-level JSON body fields logged as [REDACTED] (default: password).
	SensitiveFields []string

	// SlowRequestThreshold logs slower requests at warn level (default: 5s).
	SlowRequestThreshold time.Duration

	Component string
}

// Logging logs one record per request with the default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger logs with log.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig logs method, path, status, size and latency for every request.
//
// Bodies are read through bodyreplay wrappers, so logging them never consumes what
// the handler reads. When BodyReplay runs earlier in the chain its wrappers are
// reused; otherwise Logging creates its own.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MaxBodyLogSize <= 0 {
		cfg.MaxBodyLogSize = 4 * 1024
	}
	if cfg.SensitiveHeaders == nil {
		cfg.SensitiveHeaders = []string{
			"Authorization",
			"Cookie",
			"Set-Cookie",
			"X-Api-Key",
			"X-Auth-Token",
		}
	}
	if cfg.SensitiveFields == nil {
		cfg.SensitiveFields = []string{"password"}
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()

			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.ClientIP(clientAddr(ctx)),
				logger.UserAgent(req.UserAgent()),
			}
			if requestID, ok := GetRequestID(ctx); ok {
				attrs = append(attrs, logger.RequestID(requestID))
			}

			if cfg.LogRequestBody {
				rr, ok := GetReplayRequest(ctx)
				if !ok {
					var err error
					if rr, err = bodyreplay.NewRequest(req); err != nil {
						attrs = append(attrs, slog.String("request_body_error", err.Error()))
					} else {
						attachReplay(req, rr)
					}
				}
				if rr != nil {
					attrs = append(attrs, logger.BytesIn(int64(rr.Len())))
					if body := cfg.bodyAttr("request_body", rr.Reader()); body.Key != "" {
						attrs = append(attrs, body)
					}
				}
			}
			if cfg.LogHeaders {
				attrs = append(attrs, slog.Any("request_headers", cfg.headers(req.Header)))
			}

			resp := next(ctx)
			if resp == nil {
				return nil
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				rw, shared := w.(*bodyreplay.Response)
				if !shared {
					rw = bodyreplay.NewResponse(w)
				}

				err := resp(rw, r)
				if err == nil && !shared {
					err = rw.Commit()
				}

				status := rw.Status()
				if err != nil {
					status = errorStatus(err)
				}
				duration := time.Since(start)

				out := append(slices.Clip(attrs),
					logger.StatusCode(status),
					logger.BytesOut(int64(rw.Size())),
					logger.Latency(duration),
				)
				if subject, ok := GetSubject(ctx); ok {
					out = append(out, logger.Subject(subject))
				}
				if cfg.LogResponseBody && err == nil {
					if body := cfg.bodyAttr("response_body", bytes.NewReader(rw.Body())); body.Key != "" {
						out = append(out, body)
					}
				}
				if cfg.LogHeaders {
					out = append(out, slog.Any("response_headers", cfg.headers(rw.Header())))
				}

				level := cfg.LogLevel
				switch {
				case status >= http.StatusInternalServerError:
					level = slog.LevelError
					out = append(out, logger.Error(err))
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					out = append(out, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(ctx, level, "http request", out...)
				return err
			}
		}
	}
}

func (cfg LoggingConfig) headers(h http.Header) map[string]any {
	out := make(map[string]any, len(h))
	for key, values := range h {
		switch {
		case slices.Contains(cfg.SensitiveHeaders, key):
			out[key] = redacted
		case len(values) == 1:
			out[key] = values[0]
		default:
			out[key] = values
		}
	}
	return out
}

// bodyAttr redacts sensitive JSON fields, then truncates to MaxBodyLogSize bytes.
func (cfg LoggingConfig) bodyAttr(key string, body io.Reader) slog.Attr {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return slog.Attr{}
	}

	data = cfg.redactJSON(data)
	if len(data) > cfg.MaxBodyLogSize {
		return slog.Group(key,
			slog.String("content", string(data[:cfg.MaxBodyLogSize])),
			slog.Bool("truncated", true),
		)
	}
	return slog.String(key, string(data))
}

func (cfg LoggingConfig) redactJSON(data []byte) []byte {
	var obj map[string]json.RawMessage
	if json.Unmarshal(data, &obj) != nil {
		return data
	}

	changed := false
	for _, field := range cfg.SensitiveFields {
		if _, ok := obj[field]; ok {
			obj[field] = json.RawMessage(`"` + redacted + `"`)
			changed = true
		}
	}
	if !changed {
		return data
	}

	out, err := json.Marshal(obj)
	if err != nil {
		return data
	}
	return out
}

// errorStatus mirrors how the error handler will map err.
func errorStatus(err error) int {
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}
