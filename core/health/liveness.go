package health

import (
	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/response"
)

// Liveness reports that the process is up. It checks no dependencies.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
