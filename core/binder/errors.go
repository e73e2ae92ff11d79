package binder

import "errors"

var (
	// ErrUnsupportedMediaType means the Content-Type is not one the binder reads.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON means the body is not valid JSON for the target type.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	ErrMissingContentType = errors.New("missing content type")
)
