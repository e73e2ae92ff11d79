package bodyreplay

import "errors"

var (
	ErrBodyRead           = errors.New("bodyreplay: failed to read request body")
	ErrBodyTooLarge       = errors.New("bodyreplay: request body too large")
	ErrUnsupportedCharset = errors.New("bodyreplay: unsupported charset")
	ErrAlreadyCommitted   = errors.New("bodyreplay: response already committed")
)
