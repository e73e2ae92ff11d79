// Package router provides a typed HTTP router built on go-chi/chi.
//
// Handlers receive a context implementing handler.Context and return a
// handler.Response. Middleware wraps handlers with the same signature, so the
// whole chain stays typed end to end:
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//
//	r.Get("/words/{id}", func(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]string{"id": ctx.Param("id")})
//	})
//
//	r.Route("/me", func(r router.Router[*router.Context]) {
//		r.Use(middleware.JWT[*router.Context](svc))
//		r.Get("/", profile)
//	})
//
// Middleware registered with Use, With, Group or Route is composed when a route is
// registered, so it must be added before the routes it should wrap.
//
// Errors returned by a Response, nil responses, panics, unknown routes and
// unsupported methods are all passed to the configured error handler. Panics
// arrive wrapped in a PanicError that keeps the value and stack trace.
//
// Applications with their own context type supply a factory:
//
//	type AppContext struct{ *router.Context }
//
//	r := router.New[*AppContext](router.WithContextFactory(
//		func(w http.ResponseWriter, r *http.Request, params map[string]string) *AppContext {
//			return &AppContext{Context: router.NewContext(w, r, params)}
//		},
//	))
package router
