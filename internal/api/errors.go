package api

import (
	"context"
	"errors"

	"github.com/chanseok/rememberme/core/binder"
	"github.com/chanseok/rememberme/core/handler"
	"github.com/chanseok/rememberme/core/logger"
	"github.com/chanseok/rememberme/core/response"
	"github.com/chanseok/rememberme/core/validator"
)

var (
	errUnknownSubject = errors.New("api: token subject has no account")
	errUserLookup     = errors.New("api: failed to load token subject")
)

// bindError maps Bind failures to 400 with field details, or 415 for the wrong content type.
func bindError(err error) handler.Response {
	switch {
	case validator.IsValidationError(err):
		return response.Error(response.ErrBadRequest.
			WithMessage("Validation failed").
			WithDetails(map[string]any{"errors": validator.ExtractValidationErrors(err)}))
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return response.Error(response.ErrUnsupportedMediaType.WithError(err))
	default:
		return response.Error(response.ErrBadRequest.WithMessage("Failed to parse request").WithError(err))
	}
}

func validationError(field, rule, message string) handler.Response {
	return bindError(validator.ValidationErrors{{Field: field, Rule: rule, Message: message}})
}

// internalError logs err and answers a bare 500.
func (a *API) internalError(ctx context.Context, action string, err error) handler.Response {
	attrs := []any{logger.Component("api"), logger.Action(action), logger.Error(err)}
	if slot, ok := ctx.Value(userSlotKey{}).(*userSlot); ok && slot.set {
		attrs = append(attrs, logger.UserID(slot.user.ID))
	}
	a.log.ErrorContext(ctx, "request failed", attrs...)
	return response.Error(response.ErrInternalServerError)
}

func invalidID() handler.Response {
	return validationError("id", "positive", "must be a positive integer")
}
