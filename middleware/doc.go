// Package middleware provides typed handler.Middleware implementations.
//
// The API stack runs them in this order:
//
//	r.Use(
//		middleware.RequestID[*api.Context](),
//		middleware.BodyReplayWithConfig[*api.Context](middleware.BodyReplayConfig{MaxBodySize: cfg.BodyMaxSize}),
//		middleware.LoggingWithConfig[*api.Context](middleware.LoggingConfig{Logger: log}),
//	)
//
//	r.Group(func(r router.Router[*api.Context]) {
//		r.Use(middleware.JWTWithConfig[*api.Context](middleware.JWTConfig{
//			Service:         tokens,
//			SubjectResolver: resolveUser,
//		}))
//		r.Get("/me", handlers.Me)
//	})
//
// Every middleware has a Config struct with a Skip hook and a zero-config constructor.
package middleware
