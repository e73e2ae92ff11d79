package api

import (
	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/health"
	"github.com/chanseok/rememberme/core/logger"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/core/router"
	"github.com/chanseok/rememberme/middleware"
	"github.com/chanseok/rememberme/pkg/ratelimiter"
)

func isProbe(ctx handler.Context) bool {
	p := ctx.Request().URL.Path
	return p == "/live" || p == "/ready"
}

func (a *API) routes() router.Router[*Context] {
	r := router.New[*Context](
		router.WithContextFactory(newContext),
		router.WithErrorHandler(response.JSONErrorHandler[*Context]),
		router.WithLogger[*Context](a.log),
		router.WithMiddleware(
			middleware.RequestID[*Context](),
			middleware.ClientIP[*Context](),
			middleware.BodyReplayWithConfig[*Context](middleware.BodyReplayConfig{
				MaxBodySize: a.cfg.MaxBodySize,
			}),
			middleware.LoggingWithConfig[*Context](middleware.LoggingConfig{
				Skip:            isProbe,
				Logger:          a.log,
				LogRequestBody:  a.cfg.LogRequestBody,
				LogResponseBody: a.cfg.LogResponseBody,
			}),
		),
	)

	r.Get("/live", health.Liveness[*Context])
	r.Get("/ready", health.Readiness[*Context](a.log, a.checks...))

	r.Route("/auth", func(r router.Router[*Context]) {
		if limit := a.authRateLimit(); limit != nil {
			r.Use(limit)
		}
		r.Post("/signup", a.signup)
		r.Post("/login", a.login)
	})

	r.Group(func(r router.Router[*Context]) {
		r.Use(a.authenticate()...)

		r.Get("/me", a.me)
		r.Get("/me/words", a.listUserWords)
		r.Post("/me/words", a.addUserWord)
		r.Patch("/me/words/{id}", a.updateUserWord)
		r.Delete("/me/words/{id}", a.deleteUserWord)

		r.Route("/words", func(r router.Router[*Context]) {
			r.Get("/", a.listWords)
			r.Post("/", a.createWord)
			r.Get("/{id}", a.getWord)
			r.Put("/{id}", a.updateWord)
			r.Delete("/{id}", a.deleteWord)
		})
	})

	return r
}

// authRateLimit throttles signup and login per client address. Limiter failures
// are logged and the request goes through.
func (a *API) authRateLimit() handler.Middleware[*Context] {
	if a.cfg.AuthRateLimit <= 0 {
		return nil
	}
	limiter, err := ratelimiter.New(a.limits,
		ratelimiter.PerInterval(a.cfg.AuthRateLimit, a.cfg.AuthRateWindow),
		ratelimiter.WithKeyPrefix("rememberme:ratelimit:auth:"),
	)
	if err != nil {
		panic(err)
	}

	return middleware.RateLimit[*Context](middleware.RateLimitConfig{
		Limiter:    limiter,
		SetHeaders: true,
		StoreErrorHandler: func(ctx handler.Context, err error) handler.Response {
			a.log.WarnContext(ctx, "rate limiter unavailable",
				logger.Component("api"),
				logger.Action("rate_limit"),
				logger.Error(err),
			)
			return nil
		},
	})
}
