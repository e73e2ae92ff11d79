// Package binder decodes request bodies into Go values.
//
//	var req signupRequest
//	if err := binder.JSON()(r, &req); err != nil {
//		return response.Error(response.ErrBadRequest.WithError(err))
//	}
package binder
