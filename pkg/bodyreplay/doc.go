// Package bodyreplay buffers HTTP request and response bodies so they can be read more than once.
//
// An http.Request body is a single-read stream: once a logging or validation layer has
// consumed it, the handler sees an empty body. Request drains the body exactly once at
// construction and hands out independent readers over the cached bytes. It also keeps a
// private, mutable copy of the request parameters so filters can normalize values for
// later consumers without touching the original request.
//
//	rr, err := bodyreplay.NewRequest(r, bodyreplay.WithMaxBodySize(1<<20))
//	if err != nil {
//		// errors.Is(err, bodyreplay.ErrBodyRead), ErrBodyTooLarge, ErrUnsupportedCharset
//	}
//
//	raw, _ := io.ReadAll(rr.Body())   // full body
//	again, _ := io.ReadAll(rr.Body()) // full body again
//	text, _ := io.ReadAll(rr.Reader()) // decoded from the declared charset into UTF-8
//
//	rr.SetParam("email", strings.ToLower(email))
//	email, _ := rr.Param("email")
//
// Response wraps an http.ResponseWriter and holds the status and body in memory until
// Commit writes them to the client unchanged:
//
//	rw := bodyreplay.NewResponse(w)
//	next.ServeHTTP(rw, r)
//	log.Info("response", "status", rw.Status(), "body", string(rw.Body()))
//	if err := rw.Commit(); err != nil {
//		// already committed
//	}
//
// Both wrappers are request-scoped and not safe for concurrent use.
package bodyreplay
