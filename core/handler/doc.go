// Package handler defines the request-processing contracts shared by the router,
// middleware and application handlers.
//
// A handler receives a typed request context and returns a Response: a function that
// renders headers, status and body. Rendering errors are returned, not written, so the
// router's error handler decides how they reach the client.
//
//	type Response func(w http.ResponseWriter, r *http.Request) error
//	type HandlerFunc[C Context] func(ctx C) Response
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//	type ErrorHandler[C Context] func(ctx C, err error)
//
// Context extends context.Context with access to the request, the response writer,
// path parameters and request-scoped values:
//
//	func getWord(ctx *api.Context) handler.Response {
//		id := ctx.Param("id")
//		...
//		return response.JSON(word)
//	}
//
// Middleware wraps a HandlerFunc and may decorate the Response it returns:
//
//	func Timing[C handler.Context]() handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				start := time.Now()
//				resp := next(ctx)
//				return func(w http.ResponseWriter, r *http.Request) error {
//					w.Header().Set("X-Elapsed", time.Since(start).String())
//					return resp(w, r)
//				}
//			}
//		}
//	}
package handler
