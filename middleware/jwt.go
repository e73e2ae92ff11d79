package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/pkg/jwt"
)

type subjectContextKey struct{}

// ErrMissingToken is passed to JWTConfig.ErrorHandler when the request has no token.
var ErrMissingToken = errors.New("missing bearer token")

// SubjectResolver maps the subject read from a token to the subject the token must
// have been issued for, typically by loading the account it names. An error rejects
// the request.
type SubjectResolver func(ctx context.Context, subject string) (string, error)

// JWTConfig configures the JWT authentication middleware.
type JWTConfig struct {
	Skip func(ctx handler.Context) bool
	// Service verifies tokens. Required.
	Service *jwt.Service
	// TokenExtractor defaults to JWTFromAuthHeader.
	TokenExtractor func(ctx handler.Context) string
	// SubjectResolver is optional; without it the token's own subject is expected.
	SubjectResolver SubjectResolver
	// ErrorHandler defaults to a 401 JSON error naming the failure.
	ErrorHandler func(ctx handler.Context, err error) handler.Response
	// Optional lets requests without a token through unauthenticated.
	Optional bool
}

// JWT authenticates requests with tokens verified by svc.
func JWT[C handler.Context](svc *jwt.Service) handler.Middleware[C] {
	return JWTWithConfig[C](JWTConfig{Service: svc})
}

// JWTWithConfig authenticates requests with a bearer token.
//
// The token's subject is extracted, optionally resolved through SubjectResolver, and
// the token is validated against the result. On success the subject is stored in the
// context for GetSubject. Panics if no Service is configured.
func JWTWithConfig[C handler.Context](cfg JWTConfig) handler.Middleware[C] {
	if cfg.Service == nil {
		panic("jwt middleware: service is required")
	}
	if cfg.TokenExtractor == nil {
		cfg.TokenExtractor = JWTFromAuthHeader()
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = DefaultJWTErrorHandler
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			token := cfg.TokenExtractor(ctx)
			if token == "" {
				if cfg.Optional {
					return next(ctx)
				}
				return cfg.ErrorHandler(ctx, ErrMissingToken)
			}

			subject, err := cfg.Service.ExtractSubject(token)
			if err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			expected := subject
			if cfg.SubjectResolver != nil {
				if expected, err = cfg.SubjectResolver(ctx, subject); err != nil {
					return cfg.ErrorHandler(ctx, err)
				}
			}

			if err := cfg.Service.Validate(token, expected); err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			ctx.SetValue(subjectContextKey{}, expected)
			return next(ctx)
		}
	}
}

// DefaultJWTErrorHandler answers 401 with a message naming the failure.
func DefaultJWTErrorHandler(_ handler.Context, err error) handler.Response {
	var msg string
	switch {
	case errors.Is(err, ErrMissingToken):
		msg = "Missing bearer token"
	case errors.Is(err, jwt.ErrExpiredToken):
		msg = "Token expired"
	case errors.Is(err, jwt.ErrSubjectMismatch):
		msg = "Token subject mismatch"
	case errors.Is(err, jwt.ErrInvalidToken):
		msg = "Invalid token"
	default:
		msg = "Unknown token subject"
	}
	return response.Error(response.ErrUnauthorized.WithMessage(msg))
}

// GetSubject returns the authenticated subject stored by JWT.
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectContextKey{}).(string)
	return subject, ok
}

// JWTFromAuthHeader reads a token from "Authorization: Bearer <token>".
// Other schemes yield no token.
func JWTFromAuthHeader() func(handler.Context) string {
	return JWTFromAuthHeaderWithScheme("Bearer")
}

// JWTFromAuthHeaderWithScheme reads a token from the Authorization header with a custom scheme.
// The scheme is matched case-insensitively.
func JWTFromAuthHeaderWithScheme(scheme string) func(handler.Context) string {
	return func(ctx handler.Context) string {
		auth := ctx.Request().Header.Get("Authorization")
		name, token, ok := strings.Cut(auth, " ")
		if !ok || !strings.EqualFold(name, scheme) {
			return ""
		}
		return strings.TrimSpace(token)
	}
}

// JWTFromHeader reads a token from a custom header.
func JWTFromHeader(headerName string) func(handler.Context) string {
	return func(ctx handler.Context) string {
		return ctx.Request().Header.Get(headerName)
	}
}

// JWTFromCookie reads a token from a cookie.
func JWTFromCookie(cookieName string) func(handler.Context) string {
	return func(ctx handler.Context) string {
		cookie, err := ctx.Request().Cookie(cookieName)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}

// JWTFromMultiple returns the first non-empty token found by extractors.
func JWTFromMultiple(extractors ...func(handler.Context) string) func(handler.Context) string {
	return func(ctx handler.Context) string {
		for _, extractor := range extractors {
			if token := extractor(ctx); token != "" {
				return token
			}
		}
		return ""
	}
}
