package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/chanseok/rememberme/core/binder"
	"github.com/chanseok/rememberme/core/router"
	"github.com/chanseok/rememberme/core/sanitizer"
	"github.com/chanseok/rememberme/core/validator"
	"github.com/chanseok/rememberme/internal/repository"
	"github.com/chanseok/rememberme/middleware"
)

// Context is the request context passed to API handlers.
type Context struct {
	*router.Context
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{Context: router.NewContext(w, r, params)}
}

// Bind decodes the JSON body into v, then sanitizes and validates it using struct tags.
//
// The body is read through the replay wrapper when BodyReplay ran, so it arrives
// decoded to UTF-8 whatever charset the client declared.
func (c *Context) Bind(v any) error {
	bind := binder.JSONFrom(func(r *http.Request) io.Reader {
		if rr, ok := middleware.GetReplayRequest(c); ok {
			return rr.Reader()
		}
		return r.Body
	})
	if err := bind(c.Request(), v); err != nil {
		return err
	}
	if err := sanitizer.SanitizeStruct(v); err != nil {
		return err
	}
	return validator.ValidateStruct(v)
}

// User returns the account the bearer token belongs to.
// It is only set on routes behind authentication.
func (c *Context) User() (repository.User, bool) {
	slot, ok := c.Value(userSlotKey{}).(*userSlot)
	if !ok || !slot.set {
		return repository.User{}, false
	}
	return slot.user, true
}

// IDParam parses the path parameter name as a positive integer.
func (c *Context) IDParam(name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// QueryInt returns the integer query parameter name, or def when it is absent.
// Parameters come from the replay snapshot when present, else from the URL.
func (c *Context) QueryInt(name string, def int) (int, error) {
	var raw string
	if rr, ok := middleware.GetReplayRequest(c); ok {
		raw, _ = rr.Param(name)
	} else {
		raw = c.Request().URL.Query().Get(name)
	}
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
